package engine_test

import (
	"testing"

	"domainsuggest/internal/engine"
	"domainsuggest/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	a := applicant("John Smith", "Apple", "Marketing Manager")
	cases := map[string]int{
		"johnsmith-apple.com":                 27,
		"johnsmithatapple.com":                26,
		"hirejohnsmith.com":                   22,
		"johnsmith-apple-marketingmanage.com": 24,
		"johnsmith-marketingmanage.com":       16,
		"johnsmithforapple.com":               26,
		"meetjohnsmith.com":                   18,
		"johnsmith-apple.dev":                 25,
		"johnsmith-apple.io":                  24,
		"johnsmith.pro":                       13,
		"johnsmith-portfolio.com":             19,
		"johnsmithresume.com":                 18,
	}

	for d, want := range cases {
		require.Equal(t, want, engine.Score(engine.ParseCandidate(d), a), d)
	}
}

func TestScore_EmptyTokenIsContained(t *testing.T) {
	// "Inc" normalizes to an empty company token, which every name part contains
	a := applicant("Ann Lee", "Inc", "")

	// name +10, company +8, .com +5, length +3, hire +4
	require.Equal(t, 30, engine.Score(engine.ParseCandidate("hireannlee.com"), a))
	require.True(t, engine.IsRecommended(engine.ParseCandidate("hireannlee.com"), a))

	// an empty name token scores for every candidate too
	b := applicant("李明", "Apple", "")
	require.Equal(t, 19, engine.Score(engine.ParseCandidate("hire.com"), b))
	require.False(t, engine.IsRecommended(engine.ParseCandidate("hire.com"), b))
	require.True(t, engine.IsRecommended(engine.ParseCandidate("atapple.com"), b))
}

func TestIsRecommended(t *testing.T) {
	a := applicant("John Smith", "Apple", "Marketing Manager")

	require.True(t, engine.IsRecommended(engine.ParseCandidate("johnsmith-apple.io"), a))
	require.True(t, engine.IsRecommended(engine.ParseCandidate("johnsmithforapple.com"), a))
	require.False(t, engine.IsRecommended(engine.ParseCandidate("hirejohnsmith.com"), a))
	require.False(t, engine.IsRecommended(engine.ParseCandidate("johnsmith-marketingmanage.com"), a))
}

func TestRank(t *testing.T) {
	results := []domain.DomainResult{
		{Domain: "a.com", Available: false, Score: 30},
		{Domain: "b.com", Available: true, Score: 10},
		{Domain: "c.com", Available: true, Score: 20},
		{Domain: "d.com", Available: true, Score: 10},
		{Domain: "e.com", Available: false, Score: 5},
	}

	engine.Rank(results)

	order := make([]string, 0, len(results))
	for _, r := range results {
		order = append(order, r.Domain)
	}
	require.Equal(t, []string{"c.com", "b.com", "d.com", "a.com", "e.com"}, order)
}

func TestRank_OrderInvariant(t *testing.T) {
	for seed := range uint64(50) {
		set := engine.Run(applicant("Jane Doe", "Acme Corp", "Engineer"), engine.SeededSource(seed), engine.Options{})

		for i := 1; i < len(set.Results); i++ {
			prev, cur := set.Results[i-1], set.Results[i]
			if prev.Available == cur.Available {
				require.GreaterOrEqual(t, prev.Score, cur.Score, "seed %d", seed)

				continue
			}
			require.True(t, prev.Available, "seed %d: unavailable ranked before available", seed)
		}
	}
}

func TestRecommend(t *testing.T) {
	a := applicant("John Smith", "Apple", "")
	ranked := []domain.DomainResult{
		{Domain: "johnsmith-apple.io", Available: true, Score: 24},
		{Domain: "johnsmith-apple.com", Available: false, Score: 27},
	}

	rec := engine.Recommend(ranked, a)
	require.Equal(t, "johnsmith-apple.io", rec.TopChoice)
	require.Equal(t, "johnsmith-apple.io combines your name with Apple, showing targeted interest", rec.Reasoning)
	require.Equal(t, engine.EstimatedImpact, rec.EstimatedImpact)
}

func TestRecommend_NothingAvailable(t *testing.T) {
	ranked := []domain.DomainResult{
		{Domain: "johnsmith-apple.com", Available: false, Score: 27},
	}

	rec := engine.Recommend(ranked, applicant("John Smith", "Apple", ""))
	require.Empty(t, rec.TopChoice)
	require.Equal(t, engine.FallbackReasoning, rec.Reasoning)
	require.Equal(t, engine.EstimatedImpact, rec.EstimatedImpact)

	rec = engine.Recommend(nil, applicant("John Smith", "Apple", ""))
	require.Equal(t, engine.FallbackReasoning, rec.Reasoning)
}
