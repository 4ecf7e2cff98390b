package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are stripped before extracting job text from a page.
var noiseSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer", "aside",
	"form", "iframe", "svg",
}

// contentSelectors are tried in order; the first non-empty match wins.
// "body" is the always-present last resort.
var contentSelectors = []string{
	"[class*=job-description]", "[class*=jobDescription]", "[id*=job-description]",
	"article", "main", "body",
}

const (
	fetchTimeout  = 30 * time.Second
	maxBodyBytes  = 4 << 20
	minGoodLength = 80
)

// ExtractJobText extracts the readable job-posting text from an HTML page.
func ExtractJobText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range contentSelectors {
		text := normalizeHTMLText(doc.Find(sel).First().Text())
		if len(text) >= minGoodLength {
			return text, nil
		}
	}
	return normalizeHTMLText(doc.Find("body").Text()), nil
}

// FetchJobText fetches a job posting URL and extracts its text.
func FetchJobText(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "resume-tailor/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return ExtractJobText(string(body))
}

// normalizeHTMLText collapses the whitespace soup goquery.Text produces
// into clean lines.
func normalizeHTMLText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
