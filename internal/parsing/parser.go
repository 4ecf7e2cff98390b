package parsing

import (
	"log"
	"strings"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Parser turns raw resume text into a structured ResumeDocument using the
// injected keyword tables. It is pure and safe for concurrent use.
type Parser struct {
	tables *keywords.Tables
}

// New creates a parser. A nil tables argument uses the default table set.
func New(tables *keywords.Tables) *Parser {
	if tables == nil {
		tables = keywords.Default()
	}
	return &Parser{tables: tables}
}

// DefaultTemplate is the document returned when nothing can be extracted.
// Callers merge partial extractions into it rather than receiving errors.
func DefaultTemplate() types.ResumeDocument {
	return types.ResumeDocument{
		ProfessionalSummary: "Dependable professional with hands-on experience supporting day-to-day operations, customers, and teams.",
		CoreCompetencies: []string{
			"Customer Service",
			"Communication",
			"Time Management",
			"Team Collaboration",
			"Problem Solving",
			"Attention to Detail",
			"Microsoft Office",
			"Data Entry",
		},
	}
}

// Parse extracts a structured document from raw resume text. It never
// fails: on any miss the result degrades to the default template merged
// with whatever partial fields were extracted, and Status records the
// degradation so callers can distinguish clean parses from fallbacks.
func (p *Parser) Parse(rawText string) types.ParseResult {
	doc := DefaultTemplate()
	if strings.TrimSpace(rawText) == "" {
		return types.ParseResult{Document: doc, Status: types.StatusFallback, Reason: "empty input"}
	}

	text := normalizeNewlines(rawText)
	lines := strings.Split(text, "\n")
	segs := Segment(text)

	info := ExtractPersonalInfo(segs.Lines(SectionContact))
	doc.PersonalInfo = info

	if summary := strings.Join(segs.BodyLines(SectionSummary), " "); summary != "" {
		doc.ProfessionalSummary = summary
	}
	if skills := p.ParseSkills(segs.BodyLines(SectionCompetencies), lines); len(skills) > 0 {
		doc.CoreCompetencies = skills
	}

	experience := p.ParseExperience(lines)
	if len(experience) > 0 {
		doc.Experience = experience
	} else {
		log.Printf("parse: no experience section found, using template experience")
	}

	doc.Education = p.ParseEducation(segs.BodyLines(SectionEducation), lines)
	doc.Certifications = p.ParseCertifications(segs.BodyLines(SectionCertifications))

	status := types.StatusParsed
	reason := ""
	if len(experience) == 0 && info.Name == "" && info.Email == "" {
		status = types.StatusFallback
		reason = "no recognizable resume structure"
	}
	return types.ParseResult{Document: doc, Status: status, Reason: reason}
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
