package engine

import "math/rand/v2"

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a generator owned by the caller. Use one per run.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec
}

// SeededSource returns a deterministic generator for reproducible runs.
func SeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec
}

const (
	baseAvailability = 0.5
	minAvailability  = 0.1
	maxAvailability  = 0.9
)

// AvailabilityScore is the probability that c is reported available.
// Long and hyphenated names are more likely free, .com less so.
func AvailabilityScore(c Candidate) float64 {
	score := baseAvailability
	if len(c.NamePart) > MaxTokenLength {
		score += 0.3
	}
	if containsHyphen(c.NamePart) {
		score += 0.2
	}
	switch c.TLD {
	case "com":
		score -= 0.2
	case "io":
		score += 0.1
	case "dev":
		score += 0.15
	}

	return min(max(score, minAvailability), maxAvailability)
}

// SimulateAvailability draws once from rng and reports c available when the
// draw is below its AvailabilityScore.
func SimulateAvailability(c Candidate, rng RandomSource) bool {
	return rng.Float64() < AvailabilityScore(c)
}
