//nolint:revive // types is a standard Go package name pattern
package types

// ParseStatus distinguishes clean parses from degraded ones.
type ParseStatus string

const (
	// StatusParsed means the document was extracted from the source text.
	StatusParsed ParseStatus = "parsed"
	// StatusFallback means the default template was used, possibly merged
	// with whatever partial fields could still be extracted.
	StatusFallback ParseStatus = "fallback"
)

// ParseResult is the outcome of parsing raw resume text. Parsing never
// fails outright: on any miss the document is backfilled from the default
// template and Status records that degradation for callers and logs.
type ParseResult struct {
	Document ResumeDocument `json:"document"`
	Status   ParseStatus    `json:"status"`
	Reason   string         `json:"reason,omitempty"`
}
