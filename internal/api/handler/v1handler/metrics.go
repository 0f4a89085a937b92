package v1handler

import (
	"context"
	"net/http"
	"time"

	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "domainsuggest/internal/api/handler/v1handler"

// Pathways label the suggestions counter.
const (
	PathwayProduction = "production"
	PathwayDemo       = "demo"
)

// Metrics holds the API instruments.
type Metrics struct {
	suggestions metric.Int64Counter
	available   metric.Int64Counter
	candidates  metric.Int64Histogram
	duration    metric.Float64Histogram
}

// NewMetrics creates the instruments on meter. A nil meter, or an instrument
// that cannot be created, records nothing.
func NewMetrics(meter metric.Meter) *Metrics {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(meterName)
	}

	m := &Metrics{}

	var err error
	m.suggestions, err = meter.Int64Counter("domainsuggest.suggestions",
		metric.WithDescription("Suggestion runs served."),
		metric.WithUnit("{run}"))
	if err != nil {
		otel.Handle(err)
		m.suggestions = noop.Int64Counter{}
	}

	m.available, err = meter.Int64Counter("domainsuggest.candidates.available",
		metric.WithDescription("Available domains returned by suggestion runs."),
		metric.WithUnit("{domain}"))
	if err != nil {
		otel.Handle(err)
		m.available = noop.Int64Counter{}
	}

	m.candidates, err = meter.Int64Histogram("domainsuggest.candidates",
		metric.WithDescription("Validated candidates per suggestion run."),
		metric.WithUnit("{domain}"),
		metric.WithExplicitBucketBoundaries(metrics.CandidateBuckets...))
	if err != nil {
		otel.Handle(err)
		m.candidates = noop.Int64Histogram{}
	}

	m.duration, err = meter.Float64Histogram("domainsuggest.request.duration",
		metric.WithDescription("Duration of v1 API requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		otel.Handle(err)
		m.duration = noop.Float64Histogram{}
	}

	return m
}

// Suggested records a served run.
func (m *Metrics) Suggested(ctx context.Context, pathway string, set domain.SuggestionSet) {
	attrs := metric.WithAttributes(attribute.String("pathway", pathway))
	m.suggestions.Add(ctx, 1, attrs)
	m.available.Add(ctx, int64(set.AvailableCount()), attrs)
	m.candidates.Record(ctx, int64(set.Candidates), attrs)
}

// Instrument records the duration of every call of next under route.
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	attrs := metric.WithAttributes(attribute.String("route", route))

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}
}
