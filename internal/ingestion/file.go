package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for file extensions the loader does not
// understand.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format")

// LoadResumeText reads a resume file and returns its cleaned text. The
// format is chosen by extension: .pdf and .docx are extracted, anything
// else is read as plain text. Load failures are downstream failures and
// surface as errors; they are not parse fallbacks.
func LoadResumeText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	case ".txt", ".md", ".text", "":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

// extractPDFText concatenates the plain text of every page.
func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocxText pulls the document body out of a DOCX archive.
func extractDocxText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// stripDocxTags converts the raw document XML content into newline-broken
// plain text: paragraph boundaries become newlines, remaining tags drop.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")

	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
