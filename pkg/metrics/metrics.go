// Package metrics holds histogram layouts shared by the service's instruments.
package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// CandidateBuckets covers the number of validated candidates of a run. The
// generator produces at most a few dozen before capping.
var CandidateBuckets = []float64{0, 2, 4, 6, 8, 10, 12, 16, 24} //nolint: gochecknoglobals
