package v1handler_test

import (
	"encoding/json"
	"testing"
	"time"

	"domainsuggest/internal/api/handler/v1handler"
	"domainsuggest/pkg/domain"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDecodeApplicant(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    domain.Applicant
		wantErr bool
	}{
		{
			name: "all fields",
			body: `{"name":"Ann Lee","targetCompany":"Acme","targetRole":"Engineer"}`,
			want: domain.Applicant{Name: "Ann Lee", TargetCompany: "Acme", TargetRole: "Engineer"},
		},
		{
			name: "unknown fields and null role",
			body: `{"name":"Ann Lee","targetCompany":"Acme","targetRole":null,"extra":{"a":[1,2]}}`,
			want: domain.Applicant{Name: "Ann Lee", TargetCompany: "Acme"},
		},
		{
			name: "empty body",
			body: ``,
			want: domain.Applicant{},
		},
		{
			name:    "not an object",
			body:    `["Ann Lee"]`,
			wantErr: true,
		},
		{
			name:    "number name",
			body:    `{"name":42,"targetCompany":"Acme"}`,
			wantErr: true,
		},
		{
			name:    "truncated",
			body:    `{"name":"Ann`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v1handler.DecodeApplicant([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func encodeToMap(t *testing.T, encode func(e *jx.Encoder)) map[string]any {
	t.Helper()

	e := &jx.Encoder{}
	encode(e)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(e.Bytes(), &out), "invalid JSON: %s", e.Bytes())

	return out
}

func sampleSet() domain.SuggestionSet {
	return domain.SuggestionSet{
		Applicant: domain.Applicant{Name: "Ann Lee", TargetCompany: "Acme"},
		Results: []domain.DomainResult{
			{
				Domain:    "annleeatacme.com",
				Available: true,
				Pricing: domain.PricingQuote{
					DomainCost: 12, OurPrice: 18, MonthlyAmortized: 1.5,
					RenewalPrice: 12, IncludedInService: true, Markup: "50%",
				},
				Score:       22,
				Recommended: true,
			},
		},
		Recommendation: domain.Recommendation{
			TopChoice:       "annleeatacme.com",
			Reasoning:       "r",
			EstimatedImpact: "i",
		},
		Insight:    domain.Insight{EstimatedAnnualProfit: 6},
		Candidates: 9,
	}
}

func TestEncodeSuggestion_Anonymous(t *testing.T) {
	out := encodeToMap(t, func(e *jx.Encoder) {
		v1handler.EncodeSuggestion(e, domain.Suggestion{SuggestionSet: sampleSet()})
	})

	require.NotContains(t, out, "id")
	require.NotContains(t, out, "createdAt")
	require.Equal(t, map[string]any{"name": "Ann Lee", "targetCompany": "Acme"}, out["applicant"])
	require.InDelta(t, 9, out["candidates"], 0)
	require.Equal(t, map[string]any{"estimatedAnnualProfit": float64(6)}, out["insight"])

	results, ok := out["suggestions"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "annleeatacme.com", first["domain"])
	require.Equal(t, true, first["recommended"])
	pricing, ok := first["pricing"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "50%", pricing["markup"])
	require.InDelta(t, 1.5, pricing["monthlyAmortized"], 0)
}

func TestEncodeSuggestion_Stored(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	out := encodeToMap(t, func(e *jx.Encoder) {
		v1handler.EncodeSuggestion(e, domain.Suggestion{
			ID:            domain.SuggestionID(id),
			SuggestionSet: sampleSet(),
			CreatedAt:     created,
		})
	})

	require.Equal(t, id.String(), out["id"])
	require.Equal(t, "2026-01-02T03:04:05Z", out["createdAt"])
}

func TestEncodeSuggestion_NoTopChoice(t *testing.T) {
	set := sampleSet()
	set.Results = nil
	set.Recommendation = domain.Recommendation{Reasoning: "none", EstimatedImpact: "i"}

	out := encodeToMap(t, func(e *jx.Encoder) {
		v1handler.EncodeSuggestion(e, domain.Suggestion{SuggestionSet: set})
	})

	rec, ok := out["recommendation"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, rec, "topChoice")
	require.Nil(t, rec["topChoice"])
	require.Equal(t, []any{}, out["suggestions"])
}

func TestEncodeDemo_Summary(t *testing.T) {
	out := encodeToMap(t, func(e *jx.Encoder) {
		v1handler.EncodeDemo(e, domain.Demo{
			SuggestionSet: sampleSet(),
			Summary: domain.DemoSummary{
				TotalSuggestions: 1, Available: 1, AvgPrice: 28.06, TopRecommendation: "annleeatacme.com",
			},
		})
	})

	summary, ok := out["summary"].(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 28.06, summary["avgPrice"], 1e-9)
	require.Equal(t, "annleeatacme.com", summary["topRecommendation"])
	require.Contains(t, out, "suggestions")
}

func TestEncodePricingReport(t *testing.T) {
	out := encodeToMap(t, func(e *jx.Encoder) {
		v1handler.EncodePricingReport(e, domain.PricingReport{
			Domains: []domain.DomainPricing{{Domain: "a.io", Pricing: domain.PricingQuote{DomainCost: 35}}},
			Analysis: domain.PricingAnalysis{
				AverageDomainCost: 35, AverageOurPrice: 52.5, ProfitPerDomain: 17.5,
			},
			Plans: []domain.ServicePlan{{Name: "Starter", Price: "$9/mo", Includes: ".com domain"}},
		})
	})

	domains, ok := out["sampleDomains"].([]any)
	require.True(t, ok)
	require.Len(t, domains, 1)
	analysis, ok := out["analysis"].(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 17.5, analysis["profitPerDomain"], 0)
	plans, ok := out["plans"].([]any)
	require.True(t, ok)
	require.Len(t, plans, 1)
}
