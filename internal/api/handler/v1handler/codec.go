package v1handler

import (
	"net/http"
	"time"

	"domainsuggest/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// DecodeApplicant parses a suggestion request body. Unknown fields are
// ignored and null values leave the field empty.
func DecodeApplicant(data []byte) (domain.Applicant, error) {
	var a domain.Applicant
	if len(data) == 0 {
		return a, nil
	}

	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var target *string
		switch key {
		case "name":
			target = &a.Name
		case "targetCompany":
			target = &a.TargetCompany
		case "targetRole":
			target = &a.TargetRole
		default:
			return d.Skip()
		}

		if d.Next() == jx.Null {
			return d.Null()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}
		*target = v

		return nil
	}); err != nil {
		return domain.Applicant{}, errors.Wrap(err, "decode applicant")
	}

	return a, nil
}

func encodeApplicant(e *jx.Encoder, a domain.Applicant) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(a.Name) })
		e.Field("targetCompany", func(e *jx.Encoder) { e.Str(a.TargetCompany) })
		if a.TargetRole != "" {
			e.Field("targetRole", func(e *jx.Encoder) { e.Str(a.TargetRole) })
		}
	})
}

func encodePricing(e *jx.Encoder, p domain.PricingQuote) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("domainCost", func(e *jx.Encoder) { e.Float64(p.DomainCost) })
		e.Field("ourPrice", func(e *jx.Encoder) { e.Float64(p.OurPrice) })
		e.Field("monthlyAmortized", func(e *jx.Encoder) { e.Float64(p.MonthlyAmortized) })
		e.Field("renewalPrice", func(e *jx.Encoder) { e.Float64(p.RenewalPrice) })
		e.Field("includedInService", func(e *jx.Encoder) { e.Bool(p.IncludedInService) })
		e.Field("markup", func(e *jx.Encoder) { e.Str(p.Markup) })
	})
}

func encodeResult(e *jx.Encoder, r domain.DomainResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("domain", func(e *jx.Encoder) { e.Str(r.Domain) })
		e.Field("available", func(e *jx.Encoder) { e.Bool(r.Available) })
		e.Field("pricing", func(e *jx.Encoder) { encodePricing(e, r.Pricing) })
		e.Field("score", func(e *jx.Encoder) { e.Int(r.Score) })
		e.Field("recommended", func(e *jx.Encoder) { e.Bool(r.Recommended) })
	})
}

// encodeSetFields writes the fields of a run into the enclosing object.
func encodeSetFields(e *jx.Encoder, s domain.SuggestionSet) {
	e.Field("applicant", func(e *jx.Encoder) { encodeApplicant(e, s.Applicant) })
	e.Field("suggestions", func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, r := range s.Results {
				encodeResult(e, r)
			}
		})
	})
	e.Field("recommendation", func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("topChoice", func(e *jx.Encoder) {
				if s.Recommendation.TopChoice == "" {
					e.Null()

					return
				}
				e.Str(s.Recommendation.TopChoice)
			})
			e.Field("reasoning", func(e *jx.Encoder) { e.Str(s.Recommendation.Reasoning) })
			e.Field("estimatedImpact", func(e *jx.Encoder) { e.Str(s.Recommendation.EstimatedImpact) })
		})
	})
	e.Field("insight", func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("estimatedAnnualProfit", func(e *jx.Encoder) { e.Float64(s.Insight.EstimatedAnnualProfit) })
		})
	})
	e.Field("candidates", func(e *jx.Encoder) { e.Int(s.Candidates) })
}

// EncodeSuggestion writes a run. The id and createdAt fields are only present
// for stored runs.
func EncodeSuggestion(e *jx.Encoder, s domain.Suggestion) {
	e.Obj(func(e *jx.Encoder) {
		if uuid.UUID(s.ID) != uuid.Nil {
			e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(s.ID).String()) })
			e.Field("createdAt", func(e *jx.Encoder) { e.Str(s.CreatedAt.UTC().Format(time.RFC3339Nano)) })
		}
		encodeSetFields(e, s.SuggestionSet)
	})
}

// EncodeDemo writes a demo run with its summary block.
func EncodeDemo(e *jx.Encoder, d domain.Demo) {
	e.Obj(func(e *jx.Encoder) {
		encodeSetFields(e, d.SuggestionSet)
		e.Field("summary", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("totalSuggestions", func(e *jx.Encoder) { e.Int(d.Summary.TotalSuggestions) })
				e.Field("available", func(e *jx.Encoder) { e.Int(d.Summary.Available) })
				e.Field("avgPrice", func(e *jx.Encoder) { e.Float64(d.Summary.AvgPrice) })
				e.Field("topRecommendation", func(e *jx.Encoder) {
					if d.Summary.TopRecommendation == "" {
						e.Null()

						return
					}
					e.Str(d.Summary.TopRecommendation)
				})
			})
		})
	})
}

// EncodePricingReport writes the pricing calculator output.
func EncodePricingReport(e *jx.Encoder, r domain.PricingReport) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("sampleDomains", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range r.Domains {
					e.Obj(func(e *jx.Encoder) {
						e.Field("domain", func(e *jx.Encoder) { e.Str(d.Domain) })
						e.Field("pricing", func(e *jx.Encoder) { encodePricing(e, d.Pricing) })
					})
				}
			})
		})
		e.Field("analysis", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("averageDomainCost", func(e *jx.Encoder) { e.Float64(r.Analysis.AverageDomainCost) })
				e.Field("averageOurPrice", func(e *jx.Encoder) { e.Float64(r.Analysis.AverageOurPrice) })
				e.Field("profitPerDomain", func(e *jx.Encoder) { e.Float64(r.Analysis.ProfitPerDomain) })
			})
		})
		e.Field("plans", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range r.Plans {
					e.Obj(func(e *jx.Encoder) {
						e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
						e.Field("price", func(e *jx.Encoder) { e.Str(p.Price) })
						e.Field("includes", func(e *jx.Encoder) { e.Str(p.Includes) })
					})
				}
			})
		})
	})
}

func encodeSuggestionList(e *jx.Encoder, items []domain.Suggestion, next string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, s := range items {
					EncodeSuggestion(e, s)
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if next == "" {
				e.Null()

				return
			}
			e.Str(next)
		})
	})
}

func encodeUsage(e *jx.Encoder, u domain.UsageSummary, days int) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("since", func(e *jx.Encoder) { e.Str(u.Since.UTC().Format(time.RFC3339Nano)) })
		e.Field("days", func(e *jx.Encoder) { e.Int(days) })
		e.Field("requests", func(e *jx.Encoder) { e.Int64(u.Requests) })
		e.Field("candidates", func(e *jx.Encoder) { e.Int64(u.Candidates) })
		e.Field("available", func(e *jx.Encoder) { e.Int64(u.Available) })
		e.Field("estimatedProfit", func(e *jx.Encoder) { e.Float64(u.EstimatedProfit) })
	})
}

func encodeError(e *jx.Encoder, res Error) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
		if res.Example != nil {
			e.Field("example", func(e *jx.Encoder) { encodeApplicant(e, *res.Example) })
		}
	})
}

// writeJSON encodes a response body with a pooled encoder.
func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
