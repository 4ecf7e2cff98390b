package parsing

import "strings"

const (
	minSkillLen = 2
	maxSkillLen = 50
)

// ParseSkills extracts core competencies. It first splits an explicit
// skills/competencies block on the usual delimiters; when no such block
// exists it falls back to scanning the whole document against the fixed
// skill vocabulary, capped at maxSkillFallbackResults.
func (p *Parser) ParseSkills(region, allLines []string) []string {
	if skills := splitSkillBlock(region); len(skills) > 0 {
		return skills
	}
	return p.scanSkillVocabulary(allLines)
}

// splitSkillBlock splits block lines on ", • - |" delimiters.
func splitSkillBlock(region []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, line := range region {
		line = strings.ReplaceAll(line, " - ", ",")
		line = strings.ReplaceAll(line, "•", ",")
		line = strings.ReplaceAll(line, "|", ",")
		line = strings.ReplaceAll(line, ";", ",")
		for _, piece := range strings.Split(line, ",") {
			skill := StripBullet(piece)
			if len(skill) < minSkillLen || len(skill) >= maxSkillLen {
				continue
			}
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skill)
		}
	}
	return out
}

// scanSkillVocabulary checks the whole document for vocabulary membership.
// Vocabulary order makes the result deterministic.
func (p *Parser) scanSkillVocabulary(allLines []string) []string {
	joined := strings.ToLower(strings.Join(allLines, " "))
	var out []string
	for _, vocab := range [][]string{p.tables.SkillVocabulary, p.tables.SpecialSkillPhrases} {
		for _, skill := range vocab {
			if len(out) >= maxSkillFallbackResults {
				return out
			}
			if strings.Contains(joined, strings.ToLower(skill)) {
				out = append(out, skill)
			}
		}
	}
	return out
}
