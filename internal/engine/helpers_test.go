package engine_test

import "domainsuggest/pkg/domain"

// fixedSource returns the same draw forever.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// seqSource replays draws in order and wraps around.
type seqSource struct {
	draws []float64
	i     int
}

func (s *seqSource) Float64() float64 {
	v := s.draws[s.i%len(s.draws)]
	s.i++

	return v
}

func applicant(name, company, role string) domain.Applicant {
	return domain.Applicant{Name: name, TargetCompany: company, TargetRole: role}
}
