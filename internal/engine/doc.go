// Package engine synthesizes, validates, prices, scores and ranks candidate
// domain names for a job applicant.
//
// The pipeline is: Normalize -> Generate -> Filter -> {SimulateAvailability,
// Price, Score} per candidate -> Rank -> Recommend. Every step is a pure
// function except availability, which draws from an injected RandomSource so
// concurrent runs never share generator state and tests can be reproducible.
//
// Availability is simulated. No registry is queried.
package engine
