package engine

import (
	"regexp"
	"strings"
)

const (
	// MaxCandidates is the default cap of validated candidates per run.
	MaxCandidates = 12
	// MaxDomainLength is the longest accepted domain.
	MaxDomainLength = 63
	// MinNamePartLength is the shortest accepted name part.
	MinNamePartLength = 2
)

var domainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]*\.[a-z]{2,}$`) //nolint: gochecknoglobals

// Candidate is a validated domain split into its name part and TLD label.
type Candidate struct {
	// Domain is NamePart + "." + TLD.
	Domain string
	// NamePart is the text before the first dot.
	NamePart string
	// TLD is the label after the last dot, without the dot.
	TLD string
}

// ParseCandidate splits a domain into a Candidate.
func ParseCandidate(d string) Candidate {
	c := Candidate{Domain: d, NamePart: d}
	if i := strings.IndexByte(d, '.'); i >= 0 {
		c.NamePart = d[:i]
	}
	if i := strings.LastIndexByte(d, '.'); i >= 0 {
		c.TLD = d[i+1:]
	}

	return c
}

// Validate reports whether d is a legal, policy-compliant domain.
func Validate(d string) bool {
	if len(d) > MaxDomainLength || strings.Contains(d, "--") {
		return false
	}
	if !domainPattern.MatchString(d) {
		return false
	}

	return len(ParseCandidate(d).NamePart) >= MinNamePartLength
}

// Filter deduplicates raw domains keeping the first occurrence, drops invalid
// ones and keeps at most limit entries. A limit <= 0 keeps everything.
func Filter(raw []string, limit int) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, d := range raw {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}

		if !Validate(d) {
			continue
		}
		out = append(out, d)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}
