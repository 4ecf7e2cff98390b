// Package rendering produces the plain, section-delimited resume text
// consumed by downstream document-formatting and export collaborators.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Section headings, in fixed output order. Downstream collaborators
// re-parse the rendered text using this same header vocabulary.
const (
	HeadingSummary    = "PROFESSIONAL SUMMARY"
	HeadingSkills     = "CORE COMPETENCIES"
	HeadingExperience = "PROFESSIONAL EXPERIENCE"
	HeadingEducation  = "EDUCATION & CREDENTIALS"
)

// RenderText renders a document deterministically: fixed section order,
// fixed bullet and heading conventions, exactly one blank line between
// sections.
func RenderText(doc types.ResumeDocument) string {
	var blocks []string

	if contact := renderContact(doc.PersonalInfo); contact != "" {
		blocks = append(blocks, contact)
	}
	if strings.TrimSpace(doc.ProfessionalSummary) != "" {
		blocks = append(blocks, HeadingSummary+"\n"+strings.TrimSpace(doc.ProfessionalSummary))
	}
	if len(doc.CoreCompetencies) > 0 {
		blocks = append(blocks, HeadingSkills+"\n"+renderBullets(doc.CoreCompetencies))
	}
	if len(doc.Experience) > 0 {
		blocks = append(blocks, HeadingExperience+"\n"+renderExperience(doc.Experience))
	}
	if block := renderEducation(doc.Education, doc.Certifications); block != "" {
		blocks = append(blocks, HeadingEducation+"\n"+block)
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func renderContact(info types.PersonalInfo) string {
	var lines []string
	for _, field := range []string{info.Name, info.Email, info.Phone, info.Location, info.LinkedIn} {
		if strings.TrimSpace(field) != "" {
			lines = append(lines, strings.TrimSpace(field))
		}
	}
	return strings.Join(lines, "\n")
}

func renderBullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

// renderExperience emits each entry as a company line (tab-separated
// duration, so it round-trips through the parser's company-line detector),
// then the title, then bulleted achievements.
func renderExperience(entries []types.ExperienceEntry) string {
	var blocks []string
	for _, e := range entries {
		company := e.Company
		if e.Location != "" {
			company += ", " + e.Location
		}
		lines := []string{company + "\t" + e.Duration, e.Title}
		for _, a := range e.Achievements {
			lines = append(lines, "• "+a)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

func renderEducation(education []types.EducationEntry, certifications []string) string {
	var lines []string
	for _, edu := range education {
		parts := make([]string, 0, 4)
		for _, p := range []string{edu.Degree, edu.School, edu.Location, edu.Year} {
			if strings.TrimSpace(p) != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, ", "))
		}
	}
	for _, cert := range certifications {
		lines = append(lines, cert)
	}
	return strings.Join(lines, "\n")
}
