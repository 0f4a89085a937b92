package engine_test

import (
	"regexp"
	"strings"
	"testing"

	"domainsuggest/internal/engine"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{in: "johnsmith-apple.com", ok: true},
		{in: "ab.io", ok: true},
		{in: "a1.dev", ok: true},
		{in: "a.com", ok: false},
		{in: "-john.com", ok: false},
		{in: "john--smith.com", ok: false},
		{in: "john.c", ok: false},
		{in: "john.c0m", ok: false},
		{in: "John.com", ok: false},
		{in: "john.apple.io", ok: false},
		{in: "johnsmith", ok: false},
		{in: "", ok: false},
		{in: strings.Repeat("a", 59) + ".com", ok: true},
		{in: strings.Repeat("a", 60) + ".com", ok: false},
	}

	for _, tc := range cases {
		if got := engine.Validate(tc.in); got != tc.ok {
			t.Errorf("Validate(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestValidate_TrailingHyphenMatchesPattern(t *testing.T) {
	// the pattern allows a name part ending with a hyphen
	require.True(t, engine.Validate("john-.com"))
}

func TestFilter(t *testing.T) {
	raw := []string{"ab.com", "a.com", "ab.com", "cd.io", "x--y.dev", "ef.pro"}

	require.Equal(t, []string{"ab.com", "cd.io", "ef.pro"}, engine.Filter(raw, 0))
	require.Equal(t, []string{"ab.com", "cd.io"}, engine.Filter(raw, 2))
	require.Empty(t, engine.Filter(nil, engine.MaxCandidates))
}

func TestFilter_CapsGeneratedCandidates(t *testing.T) {
	raw := make([]string, 0, 20)
	for i := range 20 {
		raw = append(raw, "name"+strings.Repeat("x", i)+".com")
	}

	got := engine.Filter(raw, engine.MaxCandidates)
	require.Len(t, got, engine.MaxCandidates)
	require.Equal(t, raw[:engine.MaxCandidates], got)
}

func TestFilter_Soundness(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]*\.[a-z]{2,}$`)
	inputs := []string{
		"John Smith", "Apple", "Marketing Manager", "X", "Ümlaut GmbH", "a-b c-d",
		"Very Long Company Name Incorporated", "", "42", "Jo",
	}

	for _, name := range inputs {
		for _, company := range inputs {
			raw := engine.Generate(applicant(name, company, "Engineer"))
			for _, d := range engine.Filter(raw, 0) {
				require.Regexp(t, pattern, d)
				require.LessOrEqual(t, len(d), 63)
				require.NotContains(t, d, "--")
				require.GreaterOrEqual(t, len(engine.ParseCandidate(d).NamePart), 2)
			}
		}
	}
}

func TestParseCandidate(t *testing.T) {
	c := engine.ParseCandidate("johnsmith-apple.dev")
	require.Equal(t, engine.Candidate{Domain: "johnsmith-apple.dev", NamePart: "johnsmith-apple", TLD: "dev"}, c)

	c = engine.ParseCandidate("john.apple.io")
	require.Equal(t, "john", c.NamePart)
	require.Equal(t, "io", c.TLD)

	c = engine.ParseCandidate("nodot")
	require.Equal(t, "nodot", c.NamePart)
	require.Empty(t, c.TLD)
}
