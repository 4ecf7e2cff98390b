package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills_ExplicitBlock(t *testing.T) {
	p := newTestParser()
	skills := p.ParseSkills([]string{
		"Customer Service, Data Entry • Microsoft Office",
		"Typing | Filing; Scheduling",
	}, nil)

	assert.Equal(t, []string{
		"Customer Service", "Data Entry", "Microsoft Office",
		"Typing", "Filing", "Scheduling",
	}, skills)
}

func TestParseSkills_Deduplicates(t *testing.T) {
	p := newTestParser()
	skills := p.ParseSkills([]string{"Typing, typing, TYPING"}, nil)
	assert.Equal(t, []string{"Typing"}, skills)
}

func TestParseSkills_LengthBounds(t *testing.T) {
	p := newTestParser()
	skills := p.ParseSkills([]string{
		"A, Data Entry, This purported skill name is far too long to be a plausible competency entry",
	}, nil)
	assert.Equal(t, []string{"Data Entry"}, skills)
}

func TestParseSkills_VocabularyFallback(t *testing.T) {
	p := newTestParser()
	allLines := []string{
		"Jane Doe",
		"Provided excellent customer service and data entry support",
		"Proficient with Microsoft Office and POS systems",
	}
	skills := p.ParseSkills(nil, allLines)

	require.NotEmpty(t, skills)
	assert.Contains(t, skills, "Customer Service")
	assert.Contains(t, skills, "Data Entry")
	assert.Contains(t, skills, "Microsoft Office")
	assert.Contains(t, skills, "POS Systems")
	assert.LessOrEqual(t, len(skills), 25)
}

func TestParseSkills_FallbackIsDeterministic(t *testing.T) {
	p := newTestParser()
	allLines := []string{"customer service, data entry, excel, filing, typing"}
	first := p.ParseSkills(nil, allLines)
	second := p.ParseSkills(nil, allLines)
	assert.Equal(t, first, second)
}

func TestParseSkills_NothingFound(t *testing.T) {
	p := newTestParser()
	assert.Empty(t, p.ParseSkills(nil, []string{"zzz qqq"}))
}
