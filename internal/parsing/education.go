package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// educationKeywords mark a line as an education record.
var educationKeywords = []string{
	"degree", "bachelor", "master", "associate", "diploma", "ged",
	"university", "college", "school", "institute", "academy",
	"b.a.", "b.s.", "m.a.", "m.s.", "mba",
}

// degreeKeywords identify which comma part of a record names the degree.
var degreeKeywords = []string{
	"degree", "bachelor", "master", "associate", "diploma", "ged",
	"b.a.", "b.s.", "m.a.", "m.s.", "mba", "certificate",
}

// schoolKeywords identify which comma part names the institution.
var schoolKeywords = []string{"university", "college", "school", "institute", "academy"}

// professionalCertPhrases exclude credential lines from education even when
// they mention an institute or academy ("PMP Certification, Project
// Management Institute" is a certification, not a degree).
var professionalCertPhrases = []string{
	"certified scrum master", "pmp", "certification", "certified",
	"license", "credential",
}

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// IsEducationRecord reports whether a line describes an education record.
func IsEducationRecord(line string) bool {
	lower := strings.ToLower(line)
	if !containsAny(lower, educationKeywords) {
		return false
	}
	return !containsAny(lower, professionalCertPhrases)
}

// ParseEducation extracts education records from the education region. When
// no education section exists, it falls back to scanning every line of the
// document with the same record predicate.
func (p *Parser) ParseEducation(region, allLines []string) []types.EducationEntry {
	source := region
	if len(source) == 0 {
		source = allLines
	}

	var entries []types.EducationEntry
	for _, line := range source {
		trimmed := StripBullet(line)
		if trimmed == "" || !IsEducationRecord(trimmed) {
			continue
		}
		entries = append(entries, parseEducationLine(trimmed))
	}
	return entries
}

// parseEducationLine splits one record on commas and assigns parts by
// keyword membership; the year is the last 4-digit year on the line.
func parseEducationLine(line string) types.EducationEntry {
	var entry types.EducationEntry
	if years := yearRe.FindAllString(line, -1); len(years) > 0 {
		entry.Year = years[len(years)-1]
	}

	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == entry.Year {
			continue
		}
		part = strings.TrimSpace(strings.TrimSuffix(part, entry.Year))
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		switch {
		case entry.Degree == "" && containsAny(lower, degreeKeywords):
			entry.Degree = part
		case entry.School == "" && containsAny(lower, schoolKeywords):
			entry.School = part
		case entry.Location == "" && stateSuffixLike(part):
			entry.Location = part
		}
	}

	// A record with neither part identified keeps the whole line as the
	// degree so no information is dropped.
	if entry.Degree == "" && entry.School == "" {
		entry.Degree = strings.TrimSpace(strings.TrimSuffix(line, entry.Year))
		entry.Degree = strings.TrimRight(entry.Degree, " ,")
	}
	return entry
}

// stateSuffixLike reports whether a part looks like a location fragment
// ("Austin" following "City, TX"-style splitting, or a bare "TX").
func stateSuffixLike(part string) bool {
	if len(part) == 2 && part == strings.ToUpper(part) {
		return true
	}
	words := strings.Fields(part)
	if len(words) == 0 || len(words) > 3 {
		return false
	}
	for _, w := range words {
		if w[0] < 'A' || w[0] > 'Z' {
			return false
		}
	}
	return true
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
