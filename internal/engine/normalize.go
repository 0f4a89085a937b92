package engine

import (
	"regexp"
	"strings"
)

// MaxTokenLength is the maximum length of a normalized token.
const MaxTokenLength = 15

// corporateSuffixes matches business terms removed from tokens. It matches
// substrings, not words: "Lincoln" loses its "inc" too. Scoring depends on the
// exact normalization so this is kept as is.
var corporateSuffixes = regexp.MustCompile(`inc|llc|corp|company|ltd`) //nolint: gochecknoglobals

// Normalize turns free text into a domain-safe token: lower-cased, reduced to
// [a-z0-9], corporate suffixes stripped and truncated to MaxTokenLength bytes.
// It never fails; empty input yields an empty token.
func Normalize(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}

	token := corporateSuffixes.ReplaceAllString(b.String(), "")
	if len(token) > MaxTokenLength {
		token = token[:MaxTokenLength]
	}

	return token
}
