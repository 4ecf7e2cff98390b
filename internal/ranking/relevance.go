package ranking

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Integer score components. The sum can go negative; the final score is
// floored at zero.
const (
	categoryMatchScore   = 80
	relatedCategoryScore = 40
	unrelatedPenalty     = -20
	titleKeywordScore    = 15
	transferableScore    = 10
	industryOverlapScore = 20
	jobKeywordScore      = 5
	recencyPresentScore  = 10
	recency2020sScore    = 8
	recencyLate2010s     = 5
)

var (
	years2020sRe   = regexp.MustCompile(`\b202\d\b`)
	yearsLate2010s = regexp.MustCompile(`\b201[5-9]\b`)
)

// Breakdown holds the individual scoring components for one entry, kept
// alongside the total for verbose output and tests.
type Breakdown struct {
	Category     int `json:"category"`
	TitleOverlap int `json:"title_overlap"`
	Transferable int `json:"transferable"`
	Industry     int `json:"industry"`
	JobKeywords  int `json:"job_keywords"`
	Recency      int `json:"recency"`
	Total        int `json:"total"`
}

// Score computes the relevance of one experience entry to a job posting.
// jobKeywords is the deduplicated keyword set extracted from the job.
func Score(entry types.ExperienceEntry, job types.JobPosting, jobKeywords []string, tables *keywords.Tables) Breakdown {
	var b Breakdown

	entryCat := CategorizeEntry(entry, tables)
	jobCat := CategorizeJob(job, tables)
	switch {
	case entryCat == jobCat:
		b.Category = categoryMatchScore
	case Related(entryCat, jobCat, tables):
		b.Category = relatedCategoryScore
	default:
		b.Category = unrelatedPenalty
	}

	b.TitleOverlap = titleKeywordScore * sharedTitleKeywords(entry.Title, job.Title, tables.TitleKeywords)

	// Transferable skills matter only across category boundaries; within a
	// category the direct match already dominates.
	if entryCat != jobCat {
		entryText := entry.CombinedText()
		jobText := job.CombinedText()
		for _, group := range tables.TransferableSkills {
			if groupMatches(group, entryText) && groupMatches(group, jobText) {
				b.Transferable += transferableScore
			}
		}
	}

	if sharesIndustryBucket(entry.Company, job.Company, tables.IndustryBuckets) {
		b.Industry = industryOverlapScore
	}

	entryText := entry.CombinedText()
	for _, kw := range jobKeywords {
		if strings.Contains(entryText, strings.ToLower(kw)) {
			b.JobKeywords += jobKeywordScore
		}
	}

	b.Recency = recencyBonus(entry.Duration)

	b.Total = b.Category + b.TitleOverlap + b.Transferable + b.Industry + b.JobKeywords + b.Recency
	if b.Total < 0 {
		b.Total = 0
	}
	return b
}

// sharedTitleKeywords counts role keywords present in both titles.
func sharedTitleKeywords(entryTitle, jobTitle string, titleKeywords []string) int {
	entryLower := strings.ToLower(entryTitle)
	jobLower := strings.ToLower(jobTitle)
	count := 0
	for _, kw := range titleKeywords {
		if strings.Contains(entryLower, kw) && strings.Contains(jobLower, kw) {
			count++
		}
	}
	return count
}

// groupMatches reports whether any keyword of a transferable-skill group
// appears in the text.
func groupMatches(group keywords.SkillGroup, text string) bool {
	for _, kw := range group.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// sharesIndustryBucket reports whether both company names contain a word
// from the same industry bucket.
func sharesIndustryBucket(entryCompany, jobCompany string, buckets []keywords.IndustryBucket) bool {
	a := strings.ToLower(entryCompany)
	c := strings.ToLower(jobCompany)
	if strings.TrimSpace(a) == "" || strings.TrimSpace(c) == "" {
		return false
	}
	for _, bucket := range buckets {
		var inA, inC bool
		for _, kw := range bucket.Keywords {
			if strings.Contains(a, kw) {
				inA = true
			}
			if strings.Contains(c, kw) {
				inC = true
			}
		}
		if inA && inC {
			return true
		}
	}
	return false
}

// recencyBonus scores the free-text duration: current roles first, then
// 2020s, then late-2010s.
func recencyBonus(duration string) int {
	lower := strings.ToLower(duration)
	switch {
	case strings.Contains(lower, "present") || strings.Contains(lower, "current"):
		return recencyPresentScore
	case years2020sRe.MatchString(duration):
		return recency2020sScore
	case yearsLate2010s.MatchString(duration):
		return recencyLate2010s
	default:
		return 0
	}
}
