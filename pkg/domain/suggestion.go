package domain

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionID uniquely identifies a stored suggestion run.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SuggestionID uuid.UUID

// Applicant is the free-text input of a suggestion run. Name and TargetCompany
// are required; TargetRole is optional.
type Applicant struct {
	Name          string `json:"name"`
	TargetCompany string `json:"targetCompany"`
	TargetRole    string `json:"targetRole,omitempty"`
}

// PricingQuote is the resale pricing of a single domain under the markup
// business model. All amounts are yearly except MonthlyAmortized.
type PricingQuote struct {
	// DomainCost is the registry base cost for the TLD.
	DomainCost float64 `json:"domainCost"`
	// OurPrice is DomainCost with the markup applied, rounded to cents.
	OurPrice float64 `json:"ourPrice"`
	// MonthlyAmortized is OurPrice spread over 12 months, rounded to cents.
	MonthlyAmortized float64 `json:"monthlyAmortized"`
	// RenewalPrice is what a renewal costs at the registry.
	RenewalPrice float64 `json:"renewalPrice"`
	// IncludedInService is always true: the domain is bundled in the subscription.
	IncludedInService bool `json:"includedInService"`
	// Markup is the human-readable markup percentage, e.g. "50%".
	Markup string `json:"markup"`
}

// DomainResult is one ranked candidate of a suggestion run.
type DomainResult struct {
	Domain      string       `json:"domain"`
	Available   bool         `json:"available"`
	Pricing     PricingQuote `json:"pricing"`
	Score       int          `json:"score"`
	Recommended bool         `json:"recommended"`
}

// Recommendation names the top choice of a run. TopChoice is empty when no
// candidate was available.
type Recommendation struct {
	TopChoice       string `json:"topChoice,omitempty"`
	Reasoning       string `json:"reasoning"`
	EstimatedImpact string `json:"estimatedImpact"`
}

// Insight carries the business figures derived from the top choice.
type Insight struct {
	// EstimatedAnnualProfit is OurPrice minus DomainCost of the top choice, or 0.
	EstimatedAnnualProfit float64 `json:"estimatedAnnualProfit"`
}

// SuggestionSet is the outcome of a single engine run.
type SuggestionSet struct {
	Applicant      Applicant      `json:"applicant"`
	Results        []DomainResult `json:"suggestions"`
	Recommendation Recommendation `json:"recommendation"`
	Insight        Insight        `json:"insight"`
	// Candidates is the number of validated candidates before results were trimmed.
	Candidates int `json:"candidates"`
}

// AvailableCount returns how many results are marked available.
func (s SuggestionSet) AvailableCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Available {
			n++
		}
	}

	return n
}

// Suggestion is a persisted suggestion run owned by a user.
type Suggestion struct {
	// ID is the unique identifier of the run.
	ID SuggestionID `json:"id"`
	// UserID is the identifier of the user who requested the run.
	UserID UserID `json:"userId"`

	SuggestionSet

	// CreatedAt is the time when the run was stored.
	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks when the run was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// DemoSummary aggregates a demo run.
type DemoSummary struct {
	TotalSuggestions  int     `json:"totalSuggestions"`
	Available         int     `json:"available"`
	AvgPrice          float64 `json:"avgPrice"`
	TopRecommendation string  `json:"topRecommendation,omitempty"`
}

// Demo is an uncapped run for a fixed sample applicant.
type Demo struct {
	SuggestionSet
	Summary DemoSummary `json:"summary"`
}

// DomainPricing pairs a domain with its quote.
type DomainPricing struct {
	Domain  string       `json:"domain"`
	Pricing PricingQuote `json:"pricing"`
}

// PricingAnalysis averages a set of quotes.
type PricingAnalysis struct {
	AverageDomainCost float64 `json:"averageDomainCost"`
	AverageOurPrice   float64 `json:"averageOurPrice"`
	ProfitPerDomain   float64 `json:"profitPerDomain"`
}

// ServicePlan is a subscription tier that bundles a domain.
type ServicePlan struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Includes string `json:"includes"`
}

// PricingReport is the output of the pricing calculator.
type PricingReport struct {
	Domains  []DomainPricing `json:"sampleDomains"`
	Analysis PricingAnalysis `json:"analysis"`
	Plans    []ServicePlan   `json:"plans"`
}
