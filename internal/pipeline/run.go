// Package pipeline provides the high-level orchestration for tailoring a
// resume against one or more job postings.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Progress step names, stable for callers that filter events.
const (
	StepIngest = "ingest"
	StepParse  = "parse"
	StepJobs   = "jobs"
	StepTailor = "tailor"
	StepRender = "render"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath  string
	JobPaths    []string
	JobURLs     []string
	OutputDir   string
	DatabaseURL string
	Verbose     bool
	OnProgress  ProgressCallback
}

// JobResult is the outcome of tailoring against one job posting.
type JobResult struct {
	Job        types.JobPosting
	OutputPath string
	Report     *tailoring.Report
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// RunPipeline parses the base resume and tailors it against every job
// posting, writing one rendered text file per job into OutputDir.
func RunPipeline(ctx context.Context, opts RunOptions) ([]JobResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	if opts.ResumePath == "" {
		return nil, fmt.Errorf("resume path is required")
	}
	if len(opts.JobPaths) == 0 && len(opts.JobURLs) == 0 {
		return nil, fmt.Errorf("at least one job file or job URL is required")
	}

	// Initialize database connection if configured
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				return nil, err
			}
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Step 1: Ingest resume text
	fmt.Printf("Step 1/4: Loading resume from %s...\n", opts.ResumePath)
	rawText, err := ingestion.LoadResumeText(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("resume ingestion failed: %w", err)
	}
	emitProgress(&opts, StepIngest, fmt.Sprintf("Loaded resume from %s", opts.ResumePath), nil)

	// Step 2: Parse resume structure
	fmt.Printf("Step 2/4: Parsing resume structure...\n")
	parser := parsing.New(nil)
	result := parser.Parse(rawText)
	if result.Status == types.StatusFallback {
		fmt.Printf("Warning: %s; continuing with fallback template\n", result.Reason)
	}
	if opts.Verbose {
		printer.PrintParseResult(&result)
	}
	emitProgress(&opts, StepParse,
		fmt.Sprintf("Parsed resume: %d experience entries", len(result.Document.Experience)), result)

	// Step 3: Load job postings
	fmt.Printf("Step 3/4: Loading %d job posting(s)...\n", len(opts.JobPaths)+len(opts.JobURLs))
	jobs, err := loadJobs(ctx, opts.JobPaths, opts.JobURLs)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, StepJobs, fmt.Sprintf("Loaded %d job postings", len(jobs)), nil)

	// Persist the base resume and job postings if a database is connected.
	var resumeID uuid.UUID
	jobIDs := make([]uuid.UUID, len(jobs))
	if database != nil {
		resumeID, err = database.SaveResume(ctx, rawText, result)
		if err != nil {
			fmt.Printf("Warning: Failed to save resume: %v\n", err)
			database = nil
		} else {
			for i, job := range jobs {
				jobIDs[i], err = database.SaveJob(ctx, job)
				if err != nil {
					fmt.Printf("Warning: Failed to save job posting: %v\n", err)
					database = nil
					break
				}
			}
		}
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Step 4: Tailor against each job in parallel. Tailor clones the
	// document per call, so the parsed base document is shared read-only.
	fmt.Printf("Step 4/4: Tailoring against %d job(s)...\n", len(jobs))
	engine := tailoring.NewEngine(nil)
	results := make([]JobResult, len(jobs))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			tailored, report := engine.Tailor(result.Document, job)
			emitProgress(&opts, StepTailor,
				fmt.Sprintf("Tailored resume for %s", job.Title), nil)
			text := rendering.RenderText(tailored)

			outputPath := ""
			if opts.OutputDir != "" {
				outputPath = filepath.Join(opts.OutputDir, outputFileName(job, i))
				if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputPath, err)
				}
			}

			if database != nil {
				if _, err := database.SaveTailored(gCtx, resumeID, jobIDs[i], tailored, text); err != nil {
					fmt.Printf("Warning: Failed to save tailored resume: %v\n", err)
				}
			}

			mu.Lock()
			results[i] = JobResult{Job: job, OutputPath: outputPath, Report: report}
			mu.Unlock()

			emitProgress(&opts, StepRender,
				fmt.Sprintf("Rendered tailored resume for %s", job.Title), nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		if opts.Verbose {
			printer.PrintJobPosting(&r.Job)
			printer.PrintRankedEntries(r.Report.Ranked)
			printer.PrintTailorReport(r.Report)
		}
		if r.OutputPath != "" {
			fmt.Printf("Wrote %s\n", r.OutputPath)
		}
	}

	fmt.Printf("Done! Tailored %d resume(s).\n", len(results))
	return results, nil
}

// loadJobs reads job postings from files and URLs. JSON files are
// schema-validated; plain text files use the first non-blank line as the
// title and the remainder as the description.
func loadJobs(ctx context.Context, paths, urls []string) ([]types.JobPosting, error) {
	jobs := make([]types.JobPosting, 0, len(paths)+len(urls))

	for _, path := range paths {
		job, err := loadJobFile(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	for _, url := range urls {
		text, err := ingestion.FetchJobText(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting from %s: %w", url, err)
		}
		jobs = append(jobs, jobFromText(text))
	}

	return jobs, nil
}

func loadJobFile(path string) (types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.JobPosting{}, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if schemaPath := schemas.ResolveSchemaPath("schemas/job_posting.schema.json"); schemaPath != "" {
			if err := schemas.ValidateBytes(schemaPath, data); err != nil {
				return types.JobPosting{}, fmt.Errorf("job file %s: %w", path, err)
			}
		}
		var job types.JobPosting
		if err := json.Unmarshal(data, &job); err != nil {
			return types.JobPosting{}, fmt.Errorf("failed to parse job file %s: %w", path, err)
		}
		return job, nil
	}

	return jobFromText(ingestion.CleanText(string(data))), nil
}

// jobFromText builds a posting from unstructured text. The first non-blank
// line becomes the title.
func jobFromText(text string) types.JobPosting {
	lines := strings.Split(text, "\n")
	var title string
	var rest []string
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			title = strings.TrimSpace(line)
			rest = lines[i+1:]
			break
		}
	}
	return types.JobPosting{
		Title:       title,
		Description: strings.TrimSpace(strings.Join(rest, "\n")),
	}
}

// outputFileName derives a filesystem-safe name for one tailored output.
func outputFileName(job types.JobPosting, index int) string {
	base := strings.ToLower(strings.TrimSpace(job.Title))
	if base == "" {
		return fmt.Sprintf("tailored_resume_%d.txt", index+1)
	}
	var sb strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/':
			sb.WriteByte('_')
		}
	}
	name := strings.Trim(sb.String(), "_")
	if name == "" {
		return fmt.Sprintf("tailored_resume_%d.txt", index+1)
	}
	return "tailored_resume_" + name + ".txt"
}
