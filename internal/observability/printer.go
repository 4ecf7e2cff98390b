// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParseResult outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParseResult(result *types.ParseResult) {
	if result == nil {
		return
	}
	doc := result.Document

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:    %s\n", doc.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", doc.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Status:  %s\n", result.Status))
	if result.Reason != "" {
		sb.WriteString(fmt.Sprintf("Reason:  %s\n", result.Reason))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Competencies:       %d\n", len(doc.CoreCompetencies)))
	sb.WriteString(fmt.Sprintf("Certifications:     %d", len(doc.Certifications)))

	if len(doc.Experience) > 0 {
		sb.WriteString("\n\nExperience:\n")
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s - %s\n", entry.Title, entry.Company))
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedEntries outputs the top N scored experience entries with
// their score breakdowns.
func (p *Printer) PrintRankedEntries(scored []ranking.ScoredEntry) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries ranked: %d\n\n", len(scored)))

	count := min(len(scored), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := scored[i]
		header := fmt.Sprintf("%s - %s", entry.Entry.Title, entry.Entry.Company)
		if len(header) > 48 {
			header = header[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, header))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", entry.Score))
		b := entry.Breakdown
		sb.WriteString(fmt.Sprintf("    cat:%d title:%d xfer:%d ind:%d kw:%d rec:%d\n",
			b.Category, b.TitleOverlap, b.Transferable, b.Industry, b.JobKeywords, b.Recency))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(scored)-maxItemsToShow))
	}

	p.printBox("RANKED EXPERIENCE", sb.String())
}

// PrintTailorReport outputs the keyword set and fallback state of a
// tailoring run.
func (p *Printer) PrintTailorReport(report *tailoring.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Fallback {
		sb.WriteString(fmt.Sprintf("⚠ fallback: %s\n\n", report.Reason))
	}

	if len(report.JobKeywords) > 0 {
		sb.WriteString("Job keywords:\n")
		count := min(len(report.JobKeywords), maxItemsToShow*2)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.JobKeywords[i]))
		}
		if len(report.JobKeywords) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.JobKeywords)-count))
		}
	}

	p.printBox("TAILORING REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobPosting outputs the job posting being targeted.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.Description != "" {
		desc := job.Description
		if len(desc) > 120 {
			desc = desc[:117] + "..."
		}
		sb.WriteString("\n")
		for _, line := range wrapText(desc, boxWidth-6) {
			sb.WriteString(line + "\n")
		}
	}

	p.printBox("TARGET JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// wrapText breaks a string into lines no longer than width, on word
// boundaries.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	var lines []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
