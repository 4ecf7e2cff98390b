package parsing

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// scanState names the phases of the experience scanner. The scanner is a
// small finite-state machine driven by ClassifyLine so each transition can
// be tested in isolation.
type scanState int

const (
	stateSeekingCompany scanState = iota
	stateAwaitingTitle
	stateCollecting
)

// experienceHeaders locate the start of the experience region; the first
// line containing any of these (case-insensitive) is the section start.
var experienceHeaders = []string{
	"professional experience",
	"work experience",
	"employment history",
	"work history",
	"career history",
	"experience",
}

// maxHeaderLineLen keeps prose that merely mentions "experience" from being
// mistaken for the section header.
const maxHeaderLineLen = 50

// ExperienceStart returns the index of the experience header line, or -1.
func ExperienceStart(lines []string) int {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= maxHeaderLineLen {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, h := range experienceHeaders {
			if strings.Contains(lower, h) {
				return i
			}
		}
	}
	return -1
}

// ParseExperience walks the lines of a resume and emits structured job
// entries. A company line (tab+year or date-range pattern) is the sole
// anchor for a new entry. If the experience header is never found it
// returns nil and callers fall back to the default template.
func (p *Parser) ParseExperience(lines []string) []types.ExperienceEntry {
	start := ExperienceStart(lines)
	if start < 0 {
		return nil
	}

	var entries []types.ExperienceEntry
	i := start + 1
	for i < len(lines) {
		if IsSectionEndHeader(lines[i]) {
			break
		}
		if !IsCompanyLine(lines[i]) {
			i++
			continue
		}

		entry, next := p.scanEntry(lines, i)
		entries = append(entries, entry)
		// Resume at the boundary line; consumed lines are never re-scanned.
		i = next
	}
	return entries
}

// scanEntry parses one experience entry beginning at the company line at
// index start, returning the entry and the index of the boundary line that
// ended it.
func (p *Parser) scanEntry(lines []string, start int) (types.ExperienceEntry, int) {
	company, duration, location := SplitCompanyLine(lines[start])
	entry := types.ExperienceEntry{
		Company:  company,
		Duration: duration,
		Location: location,
	}

	state := stateAwaitingTitle
	collectFrom := start + 1

	// Title lookahead: skip blanks, bullets, and over-long description
	// lines; the first remaining short line is the title. Reaching another
	// company line or a section header first means no title exists.
	j := start + 1
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			j++
			continue
		}
		kind := ClassifyLine(lines[j])
		if kind == LineCompany || kind == LineHeader {
			break
		}
		if kind == LineBullet || len(trimmed) >= maxTitleLineLen {
			j++
			continue
		}
		entry.Title = trimmed
		state = stateCollecting
		collectFrom = j + 1
		break
	}
	if state == stateAwaitingTitle {
		// No title line before the boundary: substitute a default based on
		// the company name and collect from just after the company line.
		entry.Title = p.defaultTitleFor(company)
		collectFrom = start + 1
	}

	// Achievement collection: bullets are always kept (glyph stripped);
	// plain lines only when long enough to be achievement-worthy. The
	// parser selects and trims source text, never inventing any.
	k := collectFrom
	for k < len(lines) {
		trimmed := strings.TrimSpace(lines[k])
		kind := ClassifyLine(lines[k])
		if kind == LineCompany || kind == LineHeader {
			break
		}
		if trimmed == "" {
			k++
			continue
		}
		if kind == LineBullet {
			entry.Achievements = append(entry.Achievements, StripBullet(trimmed))
		} else if len(trimmed) > minAchievementLen {
			entry.Achievements = append(entry.Achievements, trimmed)
		}
		k++
	}

	if len(entry.Achievements) == 0 {
		// The single permitted synthetic line: states the role was held,
		// claims nothing.
		entry.Achievements = []string{fmt.Sprintf("Served as %s at %s.", entry.Title, entry.Company)}
	}
	return entry, k
}

// SplitCompanyLine splits a company line into company, duration, and an
// optional two-letter-state location stripped from the company name.
func SplitCompanyLine(line string) (company, duration, location string) {
	if idx := strings.Index(line, "\t"); idx >= 0 {
		company = strings.TrimSpace(line[:idx])
		duration = strings.TrimSpace(strings.ReplaceAll(line[idx+1:], "\t", " "))
	} else if loc := dateRangeRe.FindStringIndex(line); loc != nil {
		duration = strings.TrimSpace(line[loc[0]:])
		company = strings.TrimRight(strings.TrimSpace(line[:loc[0]]), " ,-–")
		company = strings.TrimSpace(company)
	} else {
		company = strings.TrimSpace(line)
	}

	if m := stateSuffixRe.FindStringSubmatch(company); m != nil {
		location = m[1]
		company = strings.TrimSpace(company[:len(company)-len(m[0])])
	}
	return company, duration, location
}

// defaultTitleFor substitutes a title from the company-keyword table, or
// the generic fallback when nothing matches.
func (p *Parser) defaultTitleFor(company string) string {
	lower := strings.ToLower(company)
	for _, dt := range p.tables.DefaultTitles {
		if strings.Contains(lower, dt.CompanyKeyword) {
			return dt.Title
		}
	}
	return p.tables.FallbackTitle
}
