package parsing

import "strings"

// membershipKeywords exclude union and professional-membership lines from
// the certification list.
var membershipKeywords = []string{
	"union", "member of", "membership", "association", "local ",
}

// ParseCertifications collects certification lines from the certification
// region, excluding memberships, educational credentials, and the
// denylisted known-fabricated strings.
func (p *Parser) ParseCertifications(region []string) []string {
	var out []string
	for _, line := range region {
		cert := StripBullet(line)
		if cert == "" {
			continue
		}
		lower := strings.ToLower(cert)
		if containsAny(lower, membershipKeywords) {
			continue
		}
		if IsEducationRecord(cert) {
			continue
		}
		if p.isDenylisted(lower) {
			continue
		}
		out = append(out, cert)
	}
	return out
}

// isDenylisted reports whether a lowercased certification matches the
// fabricated-entry denylist.
func (p *Parser) isDenylisted(lower string) bool {
	for _, banned := range p.tables.CertificationDenylist {
		if strings.Contains(lower, banned) {
			return true
		}
	}
	return false
}
