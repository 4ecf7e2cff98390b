package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a structured resume document as plain text",
	Long:  "Render a resume document JSON file into the deterministic plain-text resume format.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume document JSON file")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output text file (default: stdout)")
	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/resume_document.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return err
		}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse resume document JSON: %w", err)
	}

	text := rendering.RenderText(doc)
	if renderOutputFile == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(renderOutputFile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %s\n", renderOutputFile)
	return nil
}
