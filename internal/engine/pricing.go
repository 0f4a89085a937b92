package engine

import (
	"fmt"
	"math"

	"domainsuggest/pkg/domain"
)

const (
	// DefaultDomainCost is the registry cost of TLDs missing from TLDPricing.
	DefaultDomainCost = 15.99
	// MarkupFactor is applied to every registry cost to derive the resale price.
	MarkupFactor = 1.5
)

// TLDPricing maps a TLD (with its leading dot) to the yearly registry cost.
var TLDPricing = map[string]float64{ //nolint: gochecknoglobals
	".com":  12.99,
	".io":   45.99,
	".dev":  19.99,
	".co":   24.99,
	".pro":  29.99,
	".hire": 299.99,
}

// SamplePricingDomains are quoted by the pricing calculator when no domains are given.
var SamplePricingDomains = []string{ //nolint: gochecknoglobals
	"johnsmith-apple.com",
	"sarahchen-google.dev",
	"mikejones-tesla.io",
	"alexbrown.hire",
}

// ServicePlans are the subscription tiers a domain is bundled into.
var ServicePlans = []domain.ServicePlan{ //nolint: gochecknoglobals
	{Name: "basic", Price: "$39/month", Includes: ".com domain + professional website + basic templates"},
	{Name: "pro", Price: "$89/month", Includes: "Premium domain + advanced features + AI optimization"},
	{Name: "enterprise", Price: "$219/month", Includes: "Multiple domains + white-label + priority support"},
}

// Round2 rounds v half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// DomainCost returns the registry cost of a TLD label (without the dot).
func DomainCost(tld string) float64 {
	if cost, ok := TLDPricing["."+tld]; ok {
		return cost
	}

	return DefaultDomainCost
}

// Price quotes c under the markup model.
func Price(c Candidate) domain.PricingQuote {
	cost := DomainCost(c.TLD)
	ourPrice := Round2(cost * MarkupFactor)

	return domain.PricingQuote{
		DomainCost:        cost,
		OurPrice:          ourPrice,
		MonthlyAmortized:  Round2(ourPrice / 12),
		RenewalPrice:      cost,
		IncludedInService: true,
		Markup:            fmt.Sprintf("%d%%", int(math.Round((MarkupFactor-1)*100))),
	}
}

// PricingReport quotes the given domains (SamplePricingDomains when empty) and
// averages the results.
func PricingReport(domains []string) domain.PricingReport {
	if len(domains) == 0 {
		domains = SamplePricingDomains
	}

	report := domain.PricingReport{
		Domains: make([]domain.DomainPricing, 0, len(domains)),
		Plans:   ServicePlans,
	}
	var costs, prices float64
	for _, d := range domains {
		q := Price(ParseCandidate(d))
		costs += q.DomainCost
		prices += q.OurPrice
		report.Domains = append(report.Domains, domain.DomainPricing{Domain: d, Pricing: q})
	}

	n := float64(len(domains))
	report.Analysis = domain.PricingAnalysis{
		AverageDomainCost: Round2(costs / n),
		AverageOurPrice:   Round2(prices / n),
		ProfitPerDomain:   Round2(prices/n - costs/n),
	}

	return report
}
