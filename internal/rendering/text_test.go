package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/types"
)

func sampleDocument() types.ResumeDocument {
	return types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane.doe@example.com",
			Phone:    "(555) 123-4567",
			Location: "Austin, TX",
		},
		ProfessionalSummary: "Reliable retail professional.",
		CoreCompetencies:    []string{"Customer Service", "Cash Handling"},
		Experience: []types.ExperienceEntry{
			{
				Title:        "Sales Associate",
				Company:      "Value Mart",
				Duration:     "2021 - Present",
				Achievements: []string{"Assisted customers with purchases and returns"},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "High School Diploma", School: "Central High School", Year: "2015"},
		},
		Certifications: []string{"Food Handler Card, 2021"},
	}
}

func TestRenderText_SectionOrder(t *testing.T) {
	text := RenderText(sampleDocument())

	idxSummary := strings.Index(text, HeadingSummary)
	idxSkills := strings.Index(text, HeadingSkills)
	idxExperience := strings.Index(text, HeadingExperience)
	idxEducation := strings.Index(text, HeadingEducation)

	require.Positive(t, idxSummary)
	assert.Less(t, idxSummary, idxSkills)
	assert.Less(t, idxSkills, idxExperience)
	assert.Less(t, idxExperience, idxEducation)
}

func TestRenderText_ContactBlockLeads(t *testing.T) {
	text := RenderText(sampleDocument())
	assert.True(t, strings.HasPrefix(text, "Jane Doe\njane.doe@example.com\n(555) 123-4567\nAustin, TX\n"))
}

func TestRenderText_SingleBlankLineBetweenSections(t *testing.T) {
	text := RenderText(sampleDocument())
	assert.NotContains(t, text, "\n\n\n")
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.False(t, strings.HasSuffix(text, "\n\n"))
}

func TestRenderText_SkipsEmptySections(t *testing.T) {
	doc := sampleDocument()
	doc.CoreCompetencies = nil
	doc.Education = nil
	doc.Certifications = nil

	text := RenderText(doc)
	assert.NotContains(t, text, HeadingSkills)
	assert.NotContains(t, text, HeadingEducation)
	assert.Contains(t, text, HeadingExperience)
}

func TestRenderText_ExperienceFormat(t *testing.T) {
	text := RenderText(sampleDocument())
	assert.Contains(t, text, "Value Mart\t2021 - Present\nSales Associate\n• Assisted customers with purchases and returns")
}

func TestRenderText_CertificationsFoldIntoEducation(t *testing.T) {
	text := RenderText(sampleDocument())
	idx := strings.Index(text, HeadingEducation)
	require.Positive(t, idx)
	tail := text[idx:]
	assert.Contains(t, tail, "High School Diploma, Central High School, 2015")
	assert.Contains(t, tail, "Food Handler Card, 2021")
}

func TestRenderText_Deterministic(t *testing.T) {
	doc := sampleDocument()
	assert.Equal(t, RenderText(doc), RenderText(doc))
}

// Rendered text is designed to survive a round trip through the parser:
// the company line keeps its tab, headings match the parser's section
// vocabulary, and bullets keep their glyph.
func TestRenderText_RoundTripsThroughParser(t *testing.T) {
	doc := sampleDocument()
	text := RenderText(doc)

	p := parsing.New(nil)
	result := p.Parse(text)
	reparsed := result.Document

	assert.Equal(t, doc.PersonalInfo.Name, reparsed.PersonalInfo.Name)
	assert.Equal(t, doc.PersonalInfo.Email, reparsed.PersonalInfo.Email)
	assert.Equal(t, doc.ProfessionalSummary, reparsed.ProfessionalSummary)
	assert.Equal(t, doc.CoreCompetencies, reparsed.CoreCompetencies)

	require.Len(t, reparsed.Experience, 1)
	assert.Equal(t, doc.Experience[0].Company, reparsed.Experience[0].Company)
	assert.Equal(t, doc.Experience[0].Title, reparsed.Experience[0].Title)
	assert.Equal(t, doc.Experience[0].Duration, reparsed.Experience[0].Duration)
	assert.Equal(t, doc.Experience[0].Achievements, reparsed.Experience[0].Achievements)

	require.Len(t, reparsed.Education, 1)
	assert.Equal(t, doc.Education[0].Degree, reparsed.Education[0].Degree)
	// Certifications render inside the credentials block, so they come back
	// as part of that region rather than as a separate list.
	assert.Contains(t, text, "Food Handler Card, 2021")
	assert.Empty(t, reparsed.Certifications)
}
