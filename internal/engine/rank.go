package engine

import (
	"fmt"
	"sort"
	"strings"

	"domainsuggest/pkg/domain"
)

const (
	// FallbackReasoning is returned when no candidate is available.
	FallbackReasoning = "Consider alternative TLDs or slightly longer domain names"
	// EstimatedImpact is attached to every recommendation.
	EstimatedImpact = "3x higher callback rate with company-specific domain"
)

func containsHyphen(s string) bool {
	return strings.IndexByte(s, '-') >= 0
}

// Score rates how relevant and professional c is for the applicant.
func Score(c Candidate, a domain.Applicant) int {
	return score(c, tokenize(a))
}

func score(c Candidate, t tokens) int {
	s := 0
	if strings.Contains(c.NamePart, t.name) {
		s += 10
	}
	if strings.Contains(c.NamePart, t.company) {
		s += 8
	}
	switch c.TLD {
	case "com":
		s += 5
	case "dev":
		s += 3
	case "io":
		s += 2
	}
	if l := len(c.NamePart); l >= 8 && l <= 20 {
		s += 3
	}
	if strings.Contains(c.NamePart, "hire") {
		s += 4
	}
	if containsHyphen(c.NamePart) {
		s++
	}

	return s
}

// IsRecommended reports whether the name part carries both the applicant's
// name and target company.
func IsRecommended(c Candidate, a domain.Applicant) bool {
	return recommended(c, tokenize(a))
}

func recommended(c Candidate, t tokens) bool {
	return strings.Contains(c.NamePart, t.name) && strings.Contains(c.NamePart, t.company)
}

// Rank orders results in place: available before unavailable, then by score
// descending. Equal results keep their generation order.
func Rank(results []domain.DomainResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Available != results[j].Available {
			return results[i].Available
		}

		return results[i].Score > results[j].Score
	})
}

// Recommend picks the first available result of a ranked list.
func Recommend(ranked []domain.DomainResult, a domain.Applicant) domain.Recommendation {
	for _, r := range ranked {
		if !r.Available {
			continue
		}

		return domain.Recommendation{
			TopChoice:       r.Domain,
			Reasoning:       fmt.Sprintf("%s combines your name with %s, showing targeted interest", r.Domain, a.TargetCompany),
			EstimatedImpact: EstimatedImpact,
		}
	}

	return domain.Recommendation{
		Reasoning:       FallbackReasoning,
		EstimatedImpact: EstimatedImpact,
	}
}
