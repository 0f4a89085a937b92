package engine

import "domainsuggest/pkg/domain"

// DemoApplicant is the fixed applicant of the demo pathway.
var DemoApplicant = domain.Applicant{ //nolint: gochecknoglobals
	Name:          "John Smith",
	TargetCompany: "Apple",
	TargetRole:    "Marketing Manager",
}

// Options bound the size of a run. Zero values disable the bound.
type Options struct {
	// MaxCandidates caps validated candidates before evaluation.
	MaxCandidates int
	// MaxResults trims the ranked results. The recommendation is still chosen
	// from the full ranking.
	MaxResults int
}

// Evaluate simulates availability, prices and scores a single candidate.
func Evaluate(c Candidate, a domain.Applicant, rng RandomSource) domain.DomainResult {
	return evaluate(c, tokenize(a), rng)
}

func evaluate(c Candidate, t tokens, rng RandomSource) domain.DomainResult {
	return domain.DomainResult{
		Domain:      c.Domain,
		Available:   SimulateAvailability(c, rng),
		Pricing:     Price(c),
		Score:       score(c, t),
		Recommended: recommended(c, t),
	}
}

// Run executes the whole pipeline for a. Availability draws come from rng in
// candidate order, so a seeded rng makes the run reproducible.
func Run(a domain.Applicant, rng RandomSource, opts Options) domain.SuggestionSet {
	t := tokenize(a)
	domains := Filter(generate(t), opts.MaxCandidates)

	results := make([]domain.DomainResult, 0, len(domains))
	for _, d := range domains {
		results = append(results, evaluate(ParseCandidate(d), t, rng))
	}
	Rank(results)

	set := domain.SuggestionSet{
		Applicant:      a,
		Recommendation: Recommend(results, a),
		Candidates:     len(domains),
	}
	for _, r := range results {
		if r.Domain == set.Recommendation.TopChoice {
			set.Insight.EstimatedAnnualProfit = Round2(r.Pricing.OurPrice - r.Pricing.DomainCost)

			break
		}
	}

	if opts.MaxResults > 0 && len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	set.Results = results

	return set
}

// Summarize aggregates a run for the demo pathway.
func Summarize(set domain.SuggestionSet) domain.DemoSummary {
	summary := domain.DemoSummary{TotalSuggestions: len(set.Results)}

	var total float64
	for _, r := range set.Results {
		if r.Available {
			summary.Available++
			total += r.Pricing.OurPrice
		}
	}
	if summary.Available > 0 {
		summary.AvgPrice = Round2(total / float64(summary.Available))
	}
	if len(set.Results) > 0 {
		summary.TopRecommendation = set.Results[0].Domain
	}

	return summary
}

// Engine runs the pipeline with a fresh RandomSource per call. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	options   Options
	newSource func() RandomSource
}

// New creates an Engine. A nil newSource defaults to NewRandomSource.
func New(options Options, newSource func() RandomSource) *Engine {
	if newSource == nil {
		newSource = NewRandomSource
	}

	return &Engine{
		options:   options,
		newSource: newSource,
	}
}

// Suggest runs the capped production pathway.
func (e *Engine) Suggest(a domain.Applicant) domain.SuggestionSet {
	return Run(a, e.newSource(), e.options)
}

// Demo runs the uncapped pathway for DemoApplicant.
func (e *Engine) Demo() domain.Demo {
	set := Run(DemoApplicant, e.newSource(), Options{})

	return domain.Demo{
		SuggestionSet: set,
		Summary:       Summarize(set),
	}
}
