package parsing

import "strings"

// Section labels a segmented resume region.
type Section string

// The fixed set of resume regions. Lines before the first recognized header
// belong to SectionContact; lines under an unrecognized trailing header are
// SectionUnclassified and discarded by the parser.
const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionCompetencies   Section = "competencies"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionUnclassified   Section = "unclassified"
)

// sectionVocabulary is the fixed header vocabulary, matched case-insensitively
// as an exact phrase or the phrase immediately followed by a colon or
// connector. Longer phrases are listed before their substrings.
var sectionVocabulary = []struct {
	section Section
	phrases []string
}{
	{SectionSummary, []string{"professional summary", "career summary", "summary", "objective", "profile"}},
	{SectionCompetencies, []string{"core competencies", "areas of expertise", "technical skills", "competencies", "skills", "abilities"}},
	{SectionExperience, []string{"professional experience", "work experience", "employment history", "work history", "career history", "experience"}},
	{SectionEducation, []string{"education & credentials", "education and credentials", "academic background", "education"}},
	{SectionCertifications, []string{"certifications", "certification", "licenses", "credentials"}},
}

// connectors may immediately follow a header phrase without breaking the match.
var headerConnectors = []string{":", " &", " and", " -", " –", " |"}

// tailHeaders open regions this parser does not model; their lines become
// the unclassified tail and are discarded.
var tailHeaders = []string{"references", "hobbies", "interests", "volunteer work", "volunteering", "additional information"}

// Segments holds the lines of each labeled region. Blank lines are kept so
// block structure survives for block-oriented extractors.
type Segments struct {
	regions map[Section][]string
}

// Lines returns the lines assigned to a section, or nil.
func (s *Segments) Lines(sec Section) []string {
	if s == nil {
		return nil
	}
	return s.regions[sec]
}

// MatchHeader reports the section a header line opens, if any.
func MatchHeader(line string) (Section, bool) {
	l := strings.ToLower(strings.TrimSpace(line))
	if l == "" {
		return "", false
	}
	for _, phrase := range tailHeaders {
		if l == phrase || strings.HasPrefix(l, phrase+":") {
			return SectionUnclassified, true
		}
	}
	for _, entry := range sectionVocabulary {
		for _, phrase := range entry.phrases {
			if !strings.HasPrefix(l, phrase) {
				continue
			}
			rest := l[len(phrase):]
			if rest == "" {
				return entry.section, true
			}
			for _, conn := range headerConnectors {
				if strings.HasPrefix(rest, conn) {
					return entry.section, true
				}
			}
		}
	}
	return "", false
}

// Segment splits newline-normalized resume text into labeled regions.
// Segmentation is total: every non-empty line lands in exactly one region.
func Segment(text string) *Segments {
	segs := &Segments{regions: make(map[Section][]string)}
	current := SectionContact

	for _, line := range strings.Split(text, "\n") {
		if sec, ok := MatchHeader(line); ok {
			current = sec
			// The header line itself belongs to its section so downstream
			// consumers can re-locate the boundary in rendered text.
			segs.regions[current] = append(segs.regions[current], line)
			continue
		}
		segs.regions[current] = append(segs.regions[current], line)
	}
	return segs
}

// BodyLines returns a section's lines with its header line and blank lines
// removed, trimmed.
func (s *Segments) BodyLines(sec Section) []string {
	var out []string
	for _, line := range s.Lines(sec) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if _, ok := MatchHeader(trimmed); ok {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
