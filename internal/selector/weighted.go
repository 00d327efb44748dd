package selector

import (
	"math/rand/v2"
	"sync"

	"github.com/herdscan/breed-identifier/internal/catalog"
)

// weightedSelector draws a record from the table's selection-weight
// distribution. Every call is an independent sample, so repeated draws
// converge to the configured weights.
type weightedSelector struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewWeightedSelector creates a weighted random selector.
// A nil rng falls back to an unpredictable seed.
func NewWeightedSelector(rng *rand.Rand) Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &weightedSelector{rng: rng}
}

// Pick returns one record proportionally to its SelectionWeight.
// Records with non-positive weight are never selected.
func (s *weightedSelector) Pick(records []catalog.Record) *catalog.Record {
	if len(records) == 0 {
		return nil
	}

	totalWeight := 0.0
	for _, r := range records {
		if r.SelectionWeight > 0 {
			totalWeight += r.SelectionWeight
		}
	}

	if totalWeight == 0 {
		return nil
	}

	// rand.Rand is not safe for concurrent use
	s.mutex.Lock()
	target := s.rng.Float64() * totalWeight
	s.mutex.Unlock()

	accumulated := 0.0
	for i := range records {
		if records[i].SelectionWeight <= 0 {
			continue
		}
		accumulated += records[i].SelectionWeight
		if target < accumulated {
			return &records[i]
		}
	}

	// Floating point accumulation can land exactly on totalWeight
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].SelectionWeight > 0 {
			return &records[i]
		}
	}

	return nil
}
