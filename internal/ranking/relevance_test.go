package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/types"
)

func TestScore_CategoryMatch(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Retail Cashier"}
	entry := types.ExperienceEntry{
		Title:   "Cashier",
		Company: "Quick Stop",
	}

	b := Score(entry, job, nil, tables)
	assert.Equal(t, 80, b.Category)
}

func TestScore_RelatedCategory(t *testing.T) {
	tables := keywords.Default()
	// Food service entry vs retail job: same related group.
	job := types.JobPosting{Title: "Retail Cashier"}
	entry := types.ExperienceEntry{
		Title:   "Server",
		Company: "Riverside Grill",
	}

	b := Score(entry, job, nil, tables)
	assert.Equal(t, 40, b.Category)
}

func TestScore_UnrelatedPenalty(t *testing.T) {
	tables := keywords.Default()
	// Construction entry vs healthcare job: unrelated.
	job := types.JobPosting{Title: "Patient Care Assistant"}
	entry := types.ExperienceEntry{
		Title:   "Laborer",
		Company: "BuildRight Construction",
	}

	b := Score(entry, job, nil, tables)
	assert.Equal(t, -20, b.Category)
}

func TestScore_TitleOverlapCounts(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Customer Service Representative"}
	entry := types.ExperienceEntry{
		Title:   "Customer Service Representative",
		Company: "Acme",
	}

	b := Score(entry, job, nil, tables)
	// "customer", "service", and "representative" are all shared.
	assert.Equal(t, 45, b.TitleOverlap)
}

func TestScore_TransferableOnlyAcrossCategories(t *testing.T) {
	tables := keywords.Default()
	// Same category: no transferable component even with shared skill words.
	job := types.JobPosting{Title: "Cashier", Description: "communication required"}
	sameCat := types.ExperienceEntry{
		Title:        "Cashier",
		Company:      "Quick Stop",
		Achievements: []string{"Strong communication with customers"},
	}
	b := Score(sameCat, job, nil, tables)
	assert.Zero(t, b.Transferable)

	// Across categories the shared group scores.
	crossCat := types.ExperienceEntry{
		Title:        "Laborer",
		Company:      "BuildRight",
		Achievements: []string{"communication with site foreman"},
	}
	b = Score(crossCat, job, nil, tables)
	assert.Equal(t, 10, b.Transferable)
}

func TestScore_IndustryOverlap(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Stock Clerk", Company: "Target"}
	entry := types.ExperienceEntry{Title: "Stocker", Company: "Walmart"}

	b := Score(entry, job, nil, tables)
	assert.Equal(t, 20, b.Industry)
}

func TestScore_IndustryRequiresBothCompanies(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Stock Clerk"} // no company
	entry := types.ExperienceEntry{Title: "Stocker", Company: "Walmart"}

	b := Score(entry, job, nil, tables)
	assert.Zero(t, b.Industry)
}

func TestScore_JobKeywordHits(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Office Assistant"}
	entry := types.ExperienceEntry{
		Title:        "Clerk",
		Company:      "Acme",
		Achievements: []string{"data entry and filing for the office"},
	}

	b := Score(entry, job, []string{"data", "filing", "office", "missing"}, tables)
	assert.Equal(t, 15, b.JobKeywords)
}

func TestScore_RecencyBonus(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Cashier"}
	base := types.ExperienceEntry{Title: "Cashier", Company: "Quick Stop"}

	cases := []struct {
		duration string
		want     int
	}{
		{"2021 - Present", 10},
		{"2019 - current", 10},
		{"2020 - 2022", 8},
		{"2015 - 2018", 5},
		{"2010 - 2014", 0},
		{"", 0},
	}
	for _, tc := range cases {
		entry := base
		entry.Duration = tc.duration
		b := Score(entry, job, nil, tables)
		assert.Equal(t, tc.want, b.Recency, "duration %q", tc.duration)
	}
}

func TestScore_FlooredAtZero(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Patient Care Assistant"}
	entry := types.ExperienceEntry{
		Title:    "Welder",
		Company:  "BuildRight Construction",
		Duration: "2008 - 2010",
	}

	b := Score(entry, job, nil, tables)
	require.Negative(t, b.Category)
	assert.GreaterOrEqual(t, b.Total, 0)
}

func TestScore_TotalIsComponentSum(t *testing.T) {
	tables := keywords.Default()
	job := types.JobPosting{Title: "Retail Sales Associate", Company: "Target"}
	entry := types.ExperienceEntry{
		Title:        "Sales Associate",
		Company:      "Walmart",
		Duration:     "2021 - Present",
		Achievements: []string{"Assisted customers on the sales floor"},
	}

	b := Score(entry, job, []string{"sales", "customer"}, tables)
	sum := b.Category + b.TitleOverlap + b.Transferable + b.Industry + b.JobKeywords + b.Recency
	assert.Equal(t, sum, b.Total)
	assert.Positive(t, b.Total)
}
