package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return New(nil)
}

func TestExperienceStart(t *testing.T) {
	lines := []string{"Jane Doe", "Professional Experience", "Acme Corp\t2019 -- 2022"}
	assert.Equal(t, 1, ExperienceStart(lines))

	assert.Equal(t, -1, ExperienceStart([]string{"Jane Doe", "Education"}))

	// Prose that merely mentions experience is too long to be a header.
	prose := []string{"Experienced professional with a decade of customer service experience in retail"}
	assert.Equal(t, -1, ExperienceStart(prose))
}

func TestParseExperience_SingleEntry(t *testing.T) {
	p := newTestParser()
	lines := []string{
		"Professional Experience",
		"Acme Corp\t2019 -- 2022",
		"Senior Sales Associate",
		"• Exceeded quarterly sales targets consistently",
		"Handled customer complaints and returns with professionalism",
		"Ok",
	}

	entries := p.ParseExperience(lines)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Acme Corp", e.Company)
	assert.Equal(t, "2019 -- 2022", e.Duration)
	assert.Equal(t, "Senior Sales Associate", e.Title)
	require.Len(t, e.Achievements, 2)
	assert.Equal(t, "Exceeded quarterly sales targets consistently", e.Achievements[0])
	assert.Equal(t, "Handled customer complaints and returns with professionalism", e.Achievements[1])
}

func TestParseExperience_ShortPlainLinesIgnored(t *testing.T) {
	p := newTestParser()
	lines := []string{
		"Work Experience",
		"Acme Corp\t2019 -- 2022",
		"Cashier",
		"Ran register",
	}
	entries := p.ParseExperience(lines)
	require.Len(t, entries, 1)
	// "Ran register" is too short to be achievement-worthy, so the entry
	// falls back to the single permitted synthetic line.
	require.Len(t, entries[0].Achievements, 1)
	assert.Equal(t, "Served as Cashier at Acme Corp.", entries[0].Achievements[0])
}

func TestParseExperience_MultipleEntries(t *testing.T) {
	p := newTestParser()
	lines := []string{
		"Professional Experience",
		"Value Mart\t2021 - Present",
		"Sales Associate",
		"• Stocked shelves and assisted customers",
		"",
		"Riverside Grill 2018 - 2020",
		"Server",
		"• Waited tables during peak dinner service",
		"Education",
		"High School Diploma, Central High School, 2015",
	}

	entries := p.ParseExperience(lines)
	require.Len(t, entries, 2)
	assert.Equal(t, "Value Mart", entries[0].Company)
	assert.Equal(t, "Sales Associate", entries[0].Title)
	assert.Equal(t, "Riverside Grill", entries[1].Company)
	assert.Equal(t, "2018 - 2020", entries[1].Duration)
	assert.Equal(t, "Server", entries[1].Title)
	// The education header ends the region; the diploma line is not scanned.
	for _, e := range entries {
		for _, a := range e.Achievements {
			assert.NotContains(t, a, "Diploma")
		}
	}
}

func TestParseExperience_NoHeaderReturnsNil(t *testing.T) {
	p := newTestParser()
	entries := p.ParseExperience([]string{"Acme Corp\t2019 -- 2022", "Cashier"})
	assert.Nil(t, entries)
}

func TestParseExperience_DefaultTitleOnBoundary(t *testing.T) {
	p := newTestParser()
	lines := []string{
		"Work Experience",
		"Sunrise Restaurant\t2020 - 2021",
		"Downtown Office Solutions\t2021 - Present",
		"Receptionist",
		"• Answered multi-line phones",
	}

	entries := p.ParseExperience(lines)
	require.Len(t, entries, 2)
	// No title line before the next company boundary: the company-keyword
	// table supplies one.
	assert.Equal(t, "Team Member", entries[0].Title)
	assert.Equal(t, "Served as Team Member at Sunrise Restaurant.", entries[0].Achievements[0])
	assert.Equal(t, "Receptionist", entries[1].Title)
}

func TestParseExperience_FallbackTitle(t *testing.T) {
	p := newTestParser()
	lines := []string{
		"Work Experience",
		"Zyx Holdings\t2019 - 2020",
		"Skills",
	}
	entries := p.ParseExperience(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "Professional", entries[0].Title)
}

func TestParseExperience_LongLineNotTitle(t *testing.T) {
	p := newTestParser()
	longLine := "Responsible for " + strings.Repeat("various duties ", 6) + "across the entire store floor"
	require.GreaterOrEqual(t, len(longLine), 80)

	lines := []string{
		"Work Experience",
		"Value Mart\t2020 - 2021",
		longLine,
		"Cashier",
		"• Operated the register",
	}
	entries := p.ParseExperience(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "Cashier", entries[0].Title)
}

func TestParseExperience_NeverInventsText(t *testing.T) {
	p := newTestParser()
	lines := []string{
		"Professional Experience",
		"Acme Corp\t2019 -- 2022",
		"Senior Sales Associate",
		"• Exceeded quarterly sales targets consistently",
	}
	source := strings.Join(lines, "\n")

	entries := p.ParseExperience(lines)
	require.Len(t, entries, 1)
	for _, a := range entries[0].Achievements {
		assert.Contains(t, source, a, "achievement text must be source text")
	}
}

func TestSplitCompanyLine(t *testing.T) {
	company, duration, location := SplitCompanyLine("Acme Corp\t2019 -- 2022")
	assert.Equal(t, "Acme Corp", company)
	assert.Equal(t, "2019 -- 2022", duration)
	assert.Empty(t, location)

	company, duration, location = SplitCompanyLine("Value Mart, TX\t2021 - Present")
	assert.Equal(t, "Value Mart", company)
	assert.Equal(t, "2021 - Present", duration)
	assert.Equal(t, "TX", location)

	company, duration, location = SplitCompanyLine("Riverside Grill 2018 - 2020")
	assert.Equal(t, "Riverside Grill", company)
	assert.Equal(t, "2018 - 2020", duration)
	assert.Empty(t, location)

	company, duration, _ = SplitCompanyLine("Acme Corp, 2019 - 2022")
	assert.Equal(t, "Acme Corp", company)
	assert.Equal(t, "2019 - 2022", duration)
}
