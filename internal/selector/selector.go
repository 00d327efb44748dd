package selector

import (
	"github.com/herdscan/breed-identifier/internal/catalog"
)

// Selector picks one breed record from a candidate list.
// Implementations must be safe for concurrent use.
type Selector interface {
	Pick(records []catalog.Record) *catalog.Record
}
