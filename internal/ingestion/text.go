// Package ingestion loads and normalizes the raw text the core consumes:
// resume files (plain text, PDF, DOCX) and job postings (files, JSON, or
// HTML pages).
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)

// CleanText normalizes text content while preserving the line structure the
// parser's heuristics depend on: line endings become LF, trailing
// whitespace is trimmed, runs of blank lines collapse to one, and interior
// space runs collapse, except around tabs, which the company-line
// detector relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = cleanLine(line)
		if strings.TrimSpace(line) == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			cleaned = append(cleaned, "")
			continue
		}
		blankRun = 0
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n")) + "\n"
}

// cleanLine trims trailing whitespace and collapses interior space runs on
// either side of a tab without touching the tab itself.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if !strings.Contains(line, "\t") {
		return multiSpaceRe.ReplaceAllString(line, " ")
	}
	parts := strings.Split(line, "\t")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(multiSpaceRe.ReplaceAllString(p, " "))
	}
	// Collapse repeated tabs from column-aligned source documents.
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\t")
}
