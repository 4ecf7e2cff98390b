//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobPosting represents a target job posting supplied by an upstream
// collaborator (job search, scraping). Treated as read-only.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// CombinedText returns the lowercased title, description, and summary of
// the posting as one string, used for keyword matching.
func (j JobPosting) CombinedText() string {
	return strings.ToLower(strings.Join([]string{j.Title, j.Description, j.Summary}, " "))
}

// IsEmpty reports whether the posting carries no usable text at all.
func (j JobPosting) IsEmpty() bool {
	return strings.TrimSpace(j.Title) == "" &&
		strings.TrimSpace(j.Description) == "" &&
		strings.TrimSpace(j.Summary) == ""
}
