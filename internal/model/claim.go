package model

import "strings"

// Claim represents the piece of text under evaluation
type Claim struct {
	Text      string `json:"text"`                 // Raw cleaned text supplied by the caller
	SourceURL string `json:"source_url,omitempty"` // Optional URL the text came from
}

// NewClaim builds an immutable claim for a single analysis run.
// Leading/trailing whitespace is trimmed once here so every downstream
// component sees the same text.
func NewClaim(text, sourceURL string) Claim {
	return Claim{
		Text:      strings.TrimSpace(text),
		SourceURL: strings.TrimSpace(sourceURL),
	}
}

// IsEmpty reports whether there is anything to analyze
func (c Claim) IsEmpty() bool {
	return c.Text == ""
}

// QueryPrefix returns at most n characters of the claim text, used to
// bound queries sent to external registries.
func (c Claim) QueryPrefix(n int) string {
	if len(c.Text) <= n {
		return c.Text
	}
	return c.Text[:n]
}

// Headline returns the first line of the claim text, used by heuristics
// that only inspect the headline.
func (c Claim) Headline() string {
	if idx := strings.IndexByte(c.Text, '\n'); idx >= 0 {
		return c.Text[:idx]
	}
	return c.Text
}
