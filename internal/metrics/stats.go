package metrics

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Baseline counters. These are presentational seed values, not real
// aggregates; Snapshot perturbs them on every read.
const (
	baseTotalIdentifications = 25847
	baseDailyUploads         = 156
	accuracyRate             = "96.3%"
	avgProcessingTime        = "2.1 seconds"
	userSatisfaction         = "4.9/5.0"
	countriesServed          = 15
)

// Stats owns the process-wide counter state. Observed identification counts
// accumulate on top of the fixed baseline; reads apply small random deltas
// so consecutive snapshots differ.
type Stats struct {
	mutex           sync.Mutex
	rng             *rand.Rand
	supportedBreeds int
	observed        int64
	perBreed        map[string]int64
	startTime       time.Time
}

// Snapshot is the counter set served by the stats endpoint.
type Snapshot struct {
	TotalIdentifications int64            `json:"total_identifications"`
	AccuracyRate         string           `json:"accuracy_rate"`
	SupportedBreeds      int              `json:"supported_breeds"`
	AvgProcessingTime    string           `json:"avg_processing_time"`
	UserSatisfaction     string           `json:"user_satisfaction"`
	CountriesServed      int              `json:"countries_served"`
	DailyUploads         int64            `json:"daily_uploads"`
	IdentifiedBreeds     map[string]int64 `json:"identified_breeds,omitempty"`
	Uptime               time.Duration    `json:"uptime"`
}

// NewStats creates the counter state. A nil rng falls back to an
// unpredictable seed.
func NewStats(supportedBreeds int, rng *rand.Rand) *Stats {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Stats{
		rng:             rng,
		supportedBreeds: supportedBreeds,
		perBreed:        make(map[string]int64),
		startTime:       time.Now(),
	}
}

// RecordIdentification counts one completed identification for a breed.
func (s *Stats) RecordIdentification(breed string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.observed++
	s.perBreed[breed]++
}

// Snapshot returns a copy of the counters with independent random deltas
// applied: total identifications gain [0,5], daily uploads gain [-10,15].
// No consistency guarantee is intended.
func (s *Stats) Snapshot() Snapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	perBreed := make(map[string]int64, len(s.perBreed))
	for breed, count := range s.perBreed {
		perBreed[breed] = count
	}

	return Snapshot{
		TotalIdentifications: baseTotalIdentifications + s.observed + s.rng.Int64N(6),
		AccuracyRate:         accuracyRate,
		SupportedBreeds:      s.supportedBreeds,
		AvgProcessingTime:    avgProcessingTime,
		UserSatisfaction:     userSatisfaction,
		CountriesServed:      countriesServed,
		DailyUploads:         baseDailyUploads + s.rng.Int64N(26) - 10,
		IdentifiedBreeds:     perBreed,
		Uptime:               time.Since(s.startTime),
	}
}
