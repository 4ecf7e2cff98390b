// Package tailoring re-ranks and re-emphasizes a parsed resume for a target
// job posting without fabricating content.
package tailoring

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ExtractJobKeywords builds the deduplicated keyword set for a job: the job
// title itself, the keyword bank of the job's category, and any of the
// common posting keywords found in the job text. Insertion order is kept so
// downstream matching is deterministic.
func ExtractJobKeywords(job types.JobPosting, tables *keywords.Tables) []string {
	jobText := job.CombinedText()
	seen := make(map[string]bool)
	var out []string
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		out = append(out, kw)
	}

	add(job.Title)

	jobCat := ranking.CategorizeJob(job, tables)
	for _, ck := range tables.Categories {
		if ck.Category != jobCat {
			continue
		}
		for _, kw := range ck.Keywords {
			add(kw)
		}
	}

	for _, kw := range tables.CommonJobKeywords {
		if strings.Contains(jobText, kw) {
			add(kw)
		}
	}
	return out
}
