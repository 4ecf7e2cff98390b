package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a single job posting",
	Long:  "Parse a resume, rank its experience against a job posting, and write a rewritten plain-text resume emphasizing the most relevant entries.",
	RunE:  runTailor,
}

var (
	tailorResumeFile string
	tailorJobTitle   string
	tailorJobFile    string
	tailorOutputFile string
	tailorVerbose    bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorResumeFile, "resume", "r", "", "Path to resume file (.txt/.pdf/.docx)")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to job posting file (text or JSON, mutually exclusive with --title)")
	tailorCmd.Flags().StringVarP(&tailorJobTitle, "title", "t", "", "Job title to tailor toward (mutually exclusive with --job)")
	tailorCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "", "Path to output text file (default: stdout)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print ranking and keyword details")
	_ = tailorCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	if tailorJobFile != "" && tailorJobTitle != "" {
		return fmt.Errorf("--job and --title are mutually exclusive; provide only one")
	}
	if tailorJobFile == "" && tailorJobTitle == "" {
		return fmt.Errorf("either --job or --title must be provided")
	}

	rawText, err := ingestion.LoadResumeText(tailorResumeFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	parser := parsing.New(nil)
	result := parser.Parse(rawText)
	if result.Status == types.StatusFallback {
		fmt.Fprintf(os.Stderr, "Warning: %s; tailoring the fallback template\n", result.Reason)
	}

	var job types.JobPosting
	if tailorJobFile != "" {
		data, err := os.ReadFile(tailorJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		if err := json.Unmarshal(data, &job); err != nil {
			// Not JSON: treat as plain text with the title on the first line.
			job = jobPostingFromText(ingestion.CleanText(string(data)))
		}
	} else {
		job = types.JobPosting{Title: tailorJobTitle}
	}

	engine := tailoring.NewEngine(nil)
	tailored, report := engine.Tailor(result.Document, job)
	if tailorVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobPosting(&job)
		printer.PrintRankedEntries(report.Ranked)
		printer.PrintTailorReport(report)
	}

	text := rendering.RenderText(tailored)
	if tailorOutputFile == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(tailorOutputFile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %s\n", tailorOutputFile)
	return nil
}

// jobPostingFromText builds a posting from unstructured text, using the
// first non-blank line as the title.
func jobPostingFromText(text string) types.JobPosting {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return types.JobPosting{
				Title:       strings.TrimSpace(line),
				Description: strings.TrimSpace(strings.Join(lines[i+1:], "\n")),
			}
		}
	}
	return types.JobPosting{}
}
