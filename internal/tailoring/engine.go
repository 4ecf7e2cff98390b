package tailoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Caps for the tailored output. Re-tailoring an already-tailored document
// for the same job stays within these bounds.
const (
	topExperienceCount = 4
	maxCompetencies    = 12
	maxSummaryPhrases  = 3
)

// Engine runs the fixed tailoring pipeline: extract job keywords, rank and
// select experience, align achievements, partition competencies, rebuild
// the summary, and filter certifications. It is pure and safe for
// concurrent use; every call works on a deep clone of the input document.
type Engine struct {
	tables *keywords.Tables
}

// NewEngine creates a tailoring engine. A nil tables argument uses the
// default table set.
func NewEngine(tables *keywords.Tables) *Engine {
	if tables == nil {
		tables = keywords.Default()
	}
	return &Engine{tables: tables}
}

// Report carries the transient scoring detail of one tailoring run for
// logging and verbose output. Scores never land on the document itself.
type Report struct {
	JobKeywords []string              `json:"job_keywords"`
	Ranked      []ranking.ScoredEntry `json:"ranked"`
	Fallback    bool                  `json:"fallback"`
	Reason      string                `json:"reason,omitempty"`
}

// Tailor produces a new document re-ranked and re-emphasized for the job.
// A malformed (empty) job posting returns the untailored document unchanged
// with the reason attached for logging.
func (e *Engine) Tailor(doc types.ResumeDocument, job types.JobPosting) (types.ResumeDocument, *Report) {
	out := doc.Clone()
	if job.IsEmpty() {
		return out, &Report{Fallback: true, Reason: "empty job posting"}
	}

	jobKeywords := ExtractJobKeywords(job, e.tables)
	ranked := ranking.RankEntries(out.Experience, job, jobKeywords, e.tables)
	top := ranking.Top(ranked, topExperienceCount)

	selected := make([]types.ExperienceEntry, 0, len(top))
	for _, s := range top {
		entry := s.Entry
		if len(entry.Achievements) == 0 {
			entry.Achievements = rolePlaceholders(entry, ranking.CategorizeEntry(entry, e.tables))
		} else {
			entry.Achievements = alignAchievements(entry.Achievements, jobKeywords)
		}
		selected = append(selected, entry)
	}
	out.Experience = selected

	out.CoreCompetencies = partitionCompetencies(out.CoreCompetencies, jobKeywords)
	out.ProfessionalSummary = rebuildSummary(out.ProfessionalSummary, job, jobKeywords, e.tables)
	out.Certifications = SelectRelevantCertifications(out.Certifications, jobKeywords, e.tables)

	return out, &Report{JobKeywords: jobKeywords, Ranked: ranked}
}

// vocabularyAlignments rewrite an achievement's wording toward the job's
// vocabulary. Each rewrite swaps a synonym for the job's own term; none
// adds a factual claim.
var vocabularyAlignments = []struct {
	from    string
	to      string
	trigger string // job keyword that activates the rewrite
}{
	{"clients", "customers", "customer"},
	{"guests", "customers", "customer"},
	{"patrons", "customers", "customer"},
	{"data input", "data entry", "data"},
	{"keyed in", "entered", "entry"},
	{"paperwork", "documentation", "admin"},
	{"shoppers", "customers", "retail"},
}

// alignAchievements lightly rewrites matched terms toward the job's
// vocabulary. Output text is otherwise the untouched source text.
func alignAchievements(achievements, jobKeywords []string) []string {
	kwSet := make(map[string]bool, len(jobKeywords))
	for _, kw := range jobKeywords {
		kwSet[kw] = true
	}

	out := make([]string, len(achievements))
	for i, a := range achievements {
		for _, al := range vocabularyAlignments {
			if !kwSet[al.trigger] {
				continue
			}
			a = replaceFold(a, al.from, al.to)
		}
		out[i] = a
	}
	return out
}

// replaceFold replaces the first case-insensitive occurrence of from.
func replaceFold(s, from, to string) string {
	idx := strings.Index(strings.ToLower(s), from)
	if idx < 0 {
		return s
	}
	return s[:idx] + to + s[idx+len(from):]
}

// rolePlaceholders synthesizes category-appropriate lines that only restate
// the role. No metrics, no accomplishments.
func rolePlaceholders(entry types.ExperienceEntry, cat keywords.Category) []string {
	role := fmt.Sprintf("Served as %s at %s.", entry.Title, entry.Company)
	switch cat {
	case keywords.CategoryRetail, keywords.CategoryCustomerService, keywords.CategoryFoodService:
		return []string{role, "Worked in a customer-facing role."}
	case keywords.CategoryAdministrative, keywords.CategoryFinance:
		return []string{role, "Worked in an office support role."}
	default:
		return []string{role}
	}
}

// partitionCompetencies moves competencies overlapping a job keyword to the
// front, preserving relative order within both groups, then truncates. A
// stable partition, not a full sort.
func partitionCompetencies(competencies, jobKeywords []string) []string {
	var matched, rest []string
	for _, comp := range competencies {
		if competencyMatches(comp, jobKeywords) {
			matched = append(matched, comp)
		} else {
			rest = append(rest, comp)
		}
	}
	out := append(matched, rest...)
	if len(out) > maxCompetencies {
		out = out[:maxCompetencies]
	}
	return out
}

// competencyMatches reports overlap between a competency and any job
// keyword, in either direction.
func competencyMatches(comp string, jobKeywords []string) bool {
	lower := strings.ToLower(comp)
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) || strings.Contains(kw, lower) {
			return true
		}
	}
	return false
}

// rebuildSummary prefixes the summary with the literal job title and
// appends the experience-area phrases implied by the matched keyword
// families, at most one per family and never more than maxSummaryPhrases
// in total. Both steps skip content already present, so re-running on the
// result is a no-op.
func rebuildSummary(summary string, job types.JobPosting, jobKeywords []string, tables *keywords.Tables) string {
	title := strings.TrimSpace(job.Title)
	if title != "" && !strings.HasPrefix(summary, title) {
		summary = title + ". " + summary
	}

	kwText := strings.Join(jobKeywords, " ")
	lowerSummary := strings.ToLower(summary)
	var phrases []string
	for _, sp := range tables.SummaryPhrases {
		if len(phrases) >= maxSummaryPhrases {
			break
		}
		if !strings.Contains(kwText, sp.Trigger) {
			continue
		}
		if strings.Contains(lowerSummary, strings.ToLower(sp.Phrase)) {
			continue
		}
		phrases = append(phrases, sp.Phrase)
	}
	if len(phrases) > 0 {
		summary = strings.TrimRight(summary, " ") + " Background includes " + joinNatural(phrases) + "."
	}
	return summary
}

// joinNatural joins phrases as "a", "a and b", or "a, b, and c".
func joinNatural(phrases []string) string {
	switch len(phrases) {
	case 1:
		return phrases[0]
	case 2:
		return phrases[0] + " and " + phrases[1]
	default:
		return strings.Join(phrases[:len(phrases)-1], ", ") + ", and " + phrases[len(phrases)-1]
	}
}

// SelectRelevantCertifications returns the subset of parsed certifications
// to keep: denylisted entries are always removed, and when any remaining
// certification overlaps a job keyword only the overlapping ones are kept.
// Certifications are never invented for a job.
func SelectRelevantCertifications(certs, jobKeywords []string, tables *keywords.Tables) []string {
	var clean []string
	for _, cert := range certs {
		lower := strings.ToLower(cert)
		banned := false
		for _, deny := range tables.CertificationDenylist {
			if strings.Contains(lower, deny) {
				banned = true
				break
			}
		}
		if !banned {
			clean = append(clean, cert)
		}
	}

	var relevant []string
	for _, cert := range clean {
		if competencyMatches(cert, jobKeywords) {
			relevant = append(relevant, cert)
		}
	}
	if len(relevant) > 0 {
		return relevant
	}
	return clean
}
