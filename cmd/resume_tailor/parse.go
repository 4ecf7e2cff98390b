package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into a structured JSON document",
	Long:  "Parse an unstructured resume (.txt, .pdf, or .docx) into a structured resume document JSON that validates against the resume_document schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.txt/.pdf/.docx)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed document")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	rawText, err := ingestion.LoadResumeText(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	parser := parsing.New(nil)
	result := parser.Parse(rawText)
	if parseVerbose {
		observability.NewPrinter(os.Stdout).PrintParseResult(&result)
	}

	jsonBytes, err := json.MarshalIndent(result.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Sanity-check our own output against the published schema.
	if schemaPath := schemas.ResolveSchemaPath("schemas/resume_document.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
			return fmt.Errorf("parsed document failed schema validation: %w", err)
		}
	}

	if parseOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %s (status: %s)\n", parseOutputFile, result.Status)
	return nil
}
