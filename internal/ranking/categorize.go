// Package ranking categorizes jobs and scores experience entries against a
// target job posting.
package ranking

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Categorize maps free text to exactly one category by testing the keyword
// lists in table priority order and returning the first hit. Assignment
// depends only on the input text and the fixed tables, so it is
// deterministic across calls.
func Categorize(text string, tables *keywords.Tables) keywords.Category {
	lower := strings.ToLower(text)
	for _, ck := range tables.Categories {
		for _, kw := range ck.Keywords {
			if strings.Contains(lower, kw) {
				return ck.Category
			}
		}
	}
	return keywords.CategoryGeneral
}

// CategorizeJob categorizes a job posting by its title and description.
func CategorizeJob(job types.JobPosting, tables *keywords.Tables) keywords.Category {
	return Categorize(job.CombinedText(), tables)
}

// CategorizeEntry categorizes an experience entry by its combined text.
func CategorizeEntry(entry types.ExperienceEntry, tables *keywords.Tables) keywords.Category {
	return Categorize(entry.CombinedText(), tables)
}

// Related reports whether two distinct categories belong to the same
// related group.
func Related(a, b keywords.Category, tables *keywords.Tables) bool {
	if a == b {
		return false
	}
	for _, group := range tables.RelatedGroups {
		var hasA, hasB bool
		for _, c := range group {
			if c == a {
				hasA = true
			}
			if c == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}
