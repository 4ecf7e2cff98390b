package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// phonePatterns are tried in order; the first match anywhere in the contact
// block wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]\d{4}`),
	regexp.MustCompile(`\b\d{3}[-.]\d{3}[-.]\d{4}\b`),
	regexp.MustCompile(`\+1[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\b\d{3}\s\d{3}\s\d{4}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// nameRe matches a capitalized two-to-four-word line.
	nameRe = regexp.MustCompile(`^[A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*){1,3}$`)

	// digitRunRe disqualifies phone-like lines from the name heuristic.
	digitRunRe = regexp.MustCompile(`\d{3,}`)

	// cityStateRe matches "City, ST" with an optional ZIP.
	cityStateRe = regexp.MustCompile(`^[A-Za-z][A-Za-z .]*,\s*[A-Z]{2}(?:\s+\d{5})?$`)
)

// ExtractPersonalInfo pulls name, email, phone, location, and LinkedIn out
// of the contact region. A field that matches nothing is left empty; callers
// merge with defaults rather than assume presence.
func ExtractPersonalInfo(contactLines []string) types.PersonalInfo {
	var info types.PersonalInfo
	joined := strings.Join(contactLines, "\n")

	for _, re := range phonePatterns {
		if m := re.FindString(joined); m != "" {
			info.Phone = m
			break
		}
	}
	info.Email = emailRe.FindString(joined)

	for _, line := range contactLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if info.LinkedIn == "" && strings.Contains(lower, "linkedin.com") {
			info.LinkedIn = trimmed
			continue
		}
		if info.Location == "" && cityStateRe.MatchString(trimmed) {
			info.Location = trimmed
			continue
		}
		if info.Name != "" {
			continue
		}
		if strings.Contains(trimmed, "@") || digitRunRe.MatchString(trimmed) {
			continue
		}
		if nameRe.MatchString(trimmed) {
			info.Name = trimmed
		}
	}
	return info
}
