// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo holds the contact block of a resume. All fields are optional;
// extraction failures leave a field empty and callers merge with defaults.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry represents a single job held, with free-text duration
// preserved verbatim (e.g. "2019 -- Present").
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// CombinedText returns the lowercased title, company, and achievement text
// of the entry as one string, used for keyword matching.
func (e ExperienceEntry) CombinedText() string {
	parts := make([]string, 0, len(e.Achievements)+2)
	parts = append(parts, e.Title, e.Company)
	parts = append(parts, e.Achievements...)
	return strings.ToLower(strings.Join(parts, " "))
}

// EducationEntry represents a single education record.
type EducationEntry struct {
	Degree   string `json:"degree"`
	School   string `json:"school"`
	Location string `json:"location,omitempty"`
	Year     string `json:"year,omitempty"`
}

// ResumeDocument is the merged result of all extractors. It is treated as a
// value: tailoring never mutates a caller's document, it works on a Clone.
type ResumeDocument struct {
	PersonalInfo        PersonalInfo      `json:"personal_info"`
	ProfessionalSummary string            `json:"professional_summary"`
	CoreCompetencies    []string          `json:"core_competencies,omitempty"`
	Experience          []ExperienceEntry `json:"experience,omitempty"`
	Education           []EducationEntry  `json:"education,omitempty"`
	Certifications      []string          `json:"certifications,omitempty"`
}

// Clone returns a deep copy of the document. Concurrent tailoring requests
// against the same base resume must each operate on an independent clone.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.CoreCompetencies = append([]string(nil), d.CoreCompetencies...)
	out.Certifications = append([]string(nil), d.Certifications...)
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Experience = make([]ExperienceEntry, len(d.Experience))
	for i, e := range d.Experience {
		e.Achievements = append([]string(nil), e.Achievements...)
		out.Experience[i] = e
	}
	return out
}
