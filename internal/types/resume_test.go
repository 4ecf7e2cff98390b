package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopiesSlices(t *testing.T) {
	original := ResumeDocument{
		ProfessionalSummary: "Summary",
		CoreCompetencies:    []string{"Customer Service", "Data Entry"},
		Certifications:      []string{"Food Handler Card"},
		Education: []EducationEntry{
			{Degree: "High School Diploma", School: "Central High School"},
		},
		Experience: []ExperienceEntry{
			{
				Title:        "Cashier",
				Company:      "Value Mart",
				Achievements: []string{"Operated POS system"},
			},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.CoreCompetencies[0] = "changed"
	clone.Certifications[0] = "changed"
	clone.Education[0].Degree = "changed"
	clone.Experience[0].Title = "changed"
	clone.Experience[0].Achievements[0] = "changed"

	assert.Equal(t, "Customer Service", original.CoreCompetencies[0])
	assert.Equal(t, "Food Handler Card", original.Certifications[0])
	assert.Equal(t, "High School Diploma", original.Education[0].Degree)
	assert.Equal(t, "Cashier", original.Experience[0].Title)
	assert.Equal(t, "Operated POS system", original.Experience[0].Achievements[0])
}

func TestClone_EmptyDocument(t *testing.T) {
	var doc ResumeDocument
	clone := doc.Clone()
	assert.Empty(t, clone.Experience)
	assert.Empty(t, clone.CoreCompetencies)
}

func TestExperienceEntry_CombinedText(t *testing.T) {
	entry := ExperienceEntry{
		Title:        "Sales Associate",
		Company:      "Value Mart",
		Achievements: []string{"Assisted Customers daily"},
	}
	text := entry.CombinedText()
	assert.Contains(t, text, "sales associate")
	assert.Contains(t, text, "value mart")
	assert.Contains(t, text, "assisted customers daily")
	assert.NotContains(t, text, "Sales")
}

func TestJobPosting_IsEmpty(t *testing.T) {
	assert.True(t, JobPosting{}.IsEmpty())
	assert.True(t, JobPosting{Company: "Acme", Location: "Austin, TX"}.IsEmpty())
	assert.True(t, JobPosting{Title: "   "}.IsEmpty())
	assert.False(t, JobPosting{Title: "Cashier"}.IsEmpty())
	assert.False(t, JobPosting{Description: "Ring up customers"}.IsEmpty())
	assert.False(t, JobPosting{Summary: "Entry-level role"}.IsEmpty())
}

func TestJobPosting_CombinedText(t *testing.T) {
	job := JobPosting{Title: "Data Entry Clerk", Description: "Accurate TYPING required"}
	text := job.CombinedText()
	assert.Contains(t, text, "data entry clerk")
	assert.Contains(t, text, "accurate typing required")
}
