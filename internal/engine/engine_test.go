package engine_test

import (
	"testing"

	"domainsuggest/internal/engine"
	"domainsuggest/pkg/domain"

	"github.com/stretchr/testify/require"
)

var johnSmith = applicant("John Smith", "Apple", "Marketing Manager") //nolint: gochecknoglobals

func domains(results []domain.DomainResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Domain)
	}

	return out
}

func TestRun_AllAvailable(t *testing.T) {
	set := engine.Run(johnSmith, fixedSource(0), engine.Options{MaxCandidates: engine.MaxCandidates})

	require.Equal(t, 12, set.Candidates)
	require.Equal(t, []string{
		"johnsmith-apple.com",
		"johnsmithatapple.com",
		"johnsmithforapple.com",
		"johnsmith-apple.dev",
		"johnsmith-apple-marketingmanage.com",
		"johnsmith-apple.io",
		"hirejohnsmith.com",
		"johnsmith-portfolio.com",
		"meetjohnsmith.com",
		"johnsmithresume.com",
		"johnsmith-marketingmanage.com",
		"johnsmith.pro",
	}, domains(set.Results))

	top := set.Results[0]
	require.Equal(t, 27, top.Score)
	require.True(t, top.Recommended)
	require.True(t, top.Available)
	require.InDelta(t, 19.49, top.Pricing.OurPrice, 1e-9)

	require.Equal(t, "johnsmith-apple.com", set.Recommendation.TopChoice)
	require.Equal(t, "johnsmith-apple.com combines your name with Apple, showing targeted interest", set.Recommendation.Reasoning)
	require.InDelta(t, 6.5, set.Insight.EstimatedAnnualProfit, 1e-9)
	require.Equal(t, johnSmith, set.Applicant)
	require.Equal(t, 12, set.AvailableCount())
}

func TestRun_PartialAvailability(t *testing.T) {
	// 0.55 keeps every candidate whose availability score is above it
	set := engine.Run(johnSmith, fixedSource(0.55), engine.Options{MaxCandidates: engine.MaxCandidates, MaxResults: 8})

	require.Equal(t, 12, set.Candidates)
	require.Equal(t, []string{
		"johnsmithatapple.com",
		"johnsmithforapple.com",
		"johnsmith-apple.dev",
		"johnsmith-apple-marketingmanage.com",
		"johnsmith-apple.io",
		"johnsmith-portfolio.com",
		"johnsmith-marketingmanage.com",
		"johnsmith-apple.com",
	}, domains(set.Results))
	require.False(t, set.Results[7].Available)

	require.Equal(t, "johnsmithatapple.com", set.Recommendation.TopChoice)
	require.InDelta(t, 6.5, set.Insight.EstimatedAnnualProfit, 1e-9)
	require.Equal(t, 7, set.AvailableCount())
}

func TestRun_NothingAvailable(t *testing.T) {
	set := engine.Run(johnSmith, fixedSource(0.95), engine.Options{MaxResults: 8})

	require.Len(t, set.Results, 8)
	require.Equal(t, "johnsmith-apple.com", set.Results[0].Domain)
	require.Empty(t, set.Recommendation.TopChoice)
	require.Equal(t, engine.FallbackReasoning, set.Recommendation.Reasoning)
	require.Zero(t, set.Insight.EstimatedAnnualProfit)
	require.Zero(t, set.AvailableCount())
}

func TestRun_RecommendationSurvivesTrimming(t *testing.T) {
	// only the last two candidates (by score) are drawn available
	draws := []float64{0.95, 0.95, 0.95, 0.95, 0.95, 0.95, 0.95, 0.95, 0.95, 0.95, 0, 0}
	set := engine.Run(johnSmith, &seqSource{draws: draws}, engine.Options{MaxResults: 1})

	// generation order: ..., johnsmith-portfolio.com, johnsmithresume.com
	require.Len(t, set.Results, 1)
	require.Equal(t, "johnsmith-portfolio.com", set.Results[0].Domain)
	require.Equal(t, "johnsmith-portfolio.com", set.Recommendation.TopChoice)
	require.InDelta(t, 6.5, set.Insight.EstimatedAnnualProfit, 1e-9)
}

func TestRun_CapsCandidates(t *testing.T) {
	set := engine.Run(johnSmith, fixedSource(0), engine.Options{MaxCandidates: 3})

	require.Equal(t, 3, set.Candidates)
	require.Equal(t, []string{
		"johnsmith-apple.com",
		"johnsmithatapple.com",
		"hirejohnsmith.com",
	}, domains(set.Results))
}

func TestRun_EmptyName(t *testing.T) {
	set := engine.Run(applicant("!!!", "Apple", ""), fixedSource(0), engine.Options{})

	require.Equal(t, 5, set.Candidates)
	// forapple 26, atapple 23, hire 19, meet 15, resume 15
	require.Equal(t, []string{
		"forapple.com",
		"atapple.com",
		"hire.com",
		"meet.com",
		"resume.com",
	}, domains(set.Results))
	require.Equal(t, "forapple.com", set.Recommendation.TopChoice)
}

func TestRun_SeededIsReproducible(t *testing.T) {
	first := engine.Run(johnSmith, engine.SeededSource(42), engine.Options{MaxResults: 8})
	second := engine.Run(johnSmith, engine.SeededSource(42), engine.Options{MaxResults: 8})

	require.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	set := engine.Run(johnSmith, fixedSource(0.55), engine.Options{})
	summary := engine.Summarize(set)

	require.Equal(t, 12, summary.TotalSuggestions)
	require.Equal(t, 7, summary.Available)
	// (5 * 19.49 + 29.99 + 68.99) / 7
	require.InDelta(t, 28.06, summary.AvgPrice, 1e-9)
	require.Equal(t, "johnsmithatapple.com", summary.TopRecommendation)
}

func TestSummarize_Empty(t *testing.T) {
	summary := engine.Summarize(domain.SuggestionSet{})

	require.Zero(t, summary.TotalSuggestions)
	require.Zero(t, summary.AvgPrice)
	require.Empty(t, summary.TopRecommendation)
}

func TestEngine(t *testing.T) {
	e := engine.New(engine.Options{MaxCandidates: engine.MaxCandidates, MaxResults: 8}, func() engine.RandomSource {
		return fixedSource(0.55)
	})

	set := e.Suggest(johnSmith)
	require.Len(t, set.Results, 8)
	require.Equal(t, 12, set.Candidates)

	demo := e.Demo()
	require.Equal(t, engine.DemoApplicant, demo.Applicant)
	require.Len(t, demo.Results, 12)
	require.Equal(t, 7, demo.Summary.Available)
	require.Equal(t, "johnsmithatapple.com", demo.Summary.TopRecommendation)
}

func TestEngine_DefaultSource(t *testing.T) {
	e := engine.New(engine.Options{MaxResults: 8}, nil)

	set := e.Suggest(johnSmith)
	require.Len(t, set.Results, 8)
	require.Equal(t, 12, set.Candidates)
}
