package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Orchestrates the entire tailoring process: resume ingestion -> parsing -> job loading -> ranking -> tailoring -> rendering, writing one output file per job posting.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runResume      string
	runJobs        []string
	runJobURLs     []string
	runOutputDir   string
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to base resume file (.txt/.pdf/.docx)")
	runCommand.Flags().StringArrayVarP(&runJobs, "job", "j", nil, "Path to a job posting file (repeatable)")
	runCommand.Flags().StringArrayVar(&runJobURLs, "job-url", nil, "URL to fetch a job posting from (repeatable)")
	runCommand.Flags().StringVarP(&runOutputDir, "out-dir", "o", "", "Directory for tailored output files")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			fmt.Printf("Loaded config from: %s\n", runConfigPath)
		}
	}

	// Apply CLI overrides; only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{OutputDir: "output"})

	jobPaths := runJobs
	if len(jobPaths) == 0 && cfg.Job != "" {
		jobPaths = []string{cfg.Job}
	}
	jobURLs := runJobURLs
	if len(jobURLs) == 0 && cfg.JobURL != "" {
		jobURLs = []string{cfg.JobURL}
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if len(jobPaths) == 0 && len(jobURLs) == 0 {
		return fmt.Errorf("at least one --job or --job-url must be provided (via flag or config)")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		ResumePath:  cfg.Resume,
		JobPaths:    jobPaths,
		JobURLs:     jobURLs,
		OutputDir:   cfg.OutputDir,
		DatabaseURL: cfg.DatabaseURL,
		Verbose:     cfg.Verbose,
	}

	_, err := pipeline.RunPipeline(ctx, opts)
	return err
}
