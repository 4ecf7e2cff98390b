// Package parsing implements the resume structuring parser: section
// segmentation, contact extraction, and the heuristic extractors for
// experience, education, skills, and certifications.
package parsing

import (
	"regexp"
	"strings"
)

// Tuning constants inherited from long-running extraction behavior. Changing
// either silently changes which lines become titles or achievements, so they
// stay fixed rather than re-derived.
const (
	// maxTitleLineLen is the cutoff above which a lookahead line is treated
	// as description rather than a job title.
	maxTitleLineLen = 80
	// minAchievementLen is the minimum length for a non-bulleted line to be
	// collected as an achievement.
	minAchievementLen = 30
	// maxSkillFallbackResults caps the whole-document skill keyword scan.
	maxSkillFallbackResults = 25
)

// LineKind tags a classified resume line.
type LineKind int

// The line classification variants consumed by the experience scanner.
const (
	LineText LineKind = iota
	LineCompany
	LineBullet
	LineHeader
)

var (
	// tabYearRe matches a tab character followed later by a 4-digit year,
	// the strongest company-line signal ("Acme Corp\t2019 -- 2022").
	tabYearRe = regexp.MustCompile(`\t.*\b(?:19|20)\d{2}\b`)

	// dateRangeRe matches "YYYY - YYYY", "YYYY -- YYYY", "YYYY and YYYY",
	// and open-ended ranges like "2019 - Present".
	dateRangeRe = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:-{1,2}|–|—|and)\s*(?:(?:19|20)\d{2}|present|current)\b`)

	// stateSuffixRe matches a trailing ", XX" two-letter-state suffix on a
	// company name.
	stateSuffixRe = regexp.MustCompile(`,\s*([A-Z]{2})\s*$`)

	// sectionEndRe matches an actual section header: one of the fixed
	// header words followed by end-of-line, a colon, or a conjunction.
	// A line that merely mentions "skills" mid-sentence does not match.
	sectionEndRe = regexp.MustCompile(`(?i)^(education|skills|certifications?|awards|achievements|licenses)\s*(?:$|:|&|\band\b)`)
)

var bulletGlyphs = []string{"•", "-", "*"}

// IsCompanyLine reports whether a line anchors a new experience entry.
// The raw (untrimmed) line is required so tab characters survive.
func IsCompanyLine(line string) bool {
	return tabYearRe.MatchString(line) || dateRangeRe.MatchString(line)
}

// IsSectionEndHeader reports whether a trimmed line is an actual section
// header, ending the experience region.
func IsSectionEndHeader(line string) bool {
	return sectionEndRe.MatchString(strings.TrimSpace(line))
}

// HasBulletPrefix reports whether a trimmed line starts with a bullet glyph.
func HasBulletPrefix(line string) bool {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return true
		}
	}
	return false
}

// StripBullet removes a leading bullet glyph and surrounding whitespace.
func StripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(strings.TrimPrefix(line, g))
		}
	}
	return line
}

// ClassifyLine tags a single line. Header wins over company so that a
// header line containing a stray year is still a boundary; company wins
// over bullet so dash-prefixed date ranges stay anchors.
func ClassifyLine(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case IsSectionEndHeader(trimmed):
		return LineHeader
	case IsCompanyLine(line):
		return LineCompany
	case HasBulletPrefix(trimmed):
		return LineBullet
	default:
		return LineText
	}
}
