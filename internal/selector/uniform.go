package selector

import (
	"math/rand/v2"
	"sync"

	"github.com/herdscan/breed-identifier/internal/catalog"
)

type uniformSelector struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewUniformSelector creates a selector that ignores weights and picks
// every record with equal probability. Useful for diagnostics.
func NewUniformSelector(rng *rand.Rand) Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &uniformSelector{rng: rng}
}

func (s *uniformSelector) Pick(records []catalog.Record) *catalog.Record {
	if len(records) == 0 {
		return nil
	}

	s.mutex.Lock()
	index := s.rng.IntN(len(records))
	s.mutex.Unlock()

	return &records[index]
}
