package bloom

// Stats tracks Bloom filter effectiveness during a scan.
type Stats struct {
	Queries        uint64  // Total queries
	DefiniteNos    uint64  // Filter said "definitely not"
	MaybeYes       uint64  // Filter said "maybe"
	ConfirmedFPs   uint64  // "maybe" answers that verification rejected
	ObservedFPRate float64 // ConfirmedFPs / MaybeYes
}

// Update records one query. actualResult is the verified answer and is only
// consulted when bloomResult is true.
func (s *Stats) Update(bloomResult, actualResult bool) {
	s.Queries++
	if !bloomResult {
		s.DefiniteNos++
	} else {
		s.MaybeYes++
		if !actualResult {
			s.ConfirmedFPs++
		}
	}
	if s.MaybeYes > 0 {
		s.ObservedFPRate = float64(s.ConfirmedFPs) / float64(s.MaybeYes)
	}
}

// Effectiveness returns the percentage of queries answered "definitely not".
func (s *Stats) Effectiveness() float64 {
	if s.Queries == 0 {
		return 0
	}
	return float64(s.DefiniteNos) / float64(s.Queries) * 100
}
