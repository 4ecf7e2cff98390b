package ranking

import (
	"sort"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ScoredEntry attaches a transient relevance score to an experience entry
// during tailoring. Scores are never persisted on the canonical document.
type ScoredEntry struct {
	Entry       types.ExperienceEntry `json:"entry"`
	SourceIndex int                   `json:"source_index"`
	Score       int                   `json:"score"`
	Breakdown   Breakdown             `json:"breakdown"`
}

// RankEntries scores every experience entry against the job and returns
// them sorted by descending score. The sort is stable, so ties keep their
// original source order and the ranking is deterministic.
func RankEntries(entries []types.ExperienceEntry, job types.JobPosting, jobKeywords []string, tables *keywords.Tables) []ScoredEntry {
	scored := make([]ScoredEntry, 0, len(entries))
	for i, entry := range entries {
		b := Score(entry, job, jobKeywords, tables)
		scored = append(scored, ScoredEntry{
			Entry:       entry,
			SourceIndex: i,
			Score:       b.Total,
			Breakdown:   b,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Top returns the first n ranked entries (fewer when less are available).
func Top(scored []ScoredEntry, n int) []ScoredEntry {
	if len(scored) <= n {
		return scored
	}
	return scored[:n]
}
