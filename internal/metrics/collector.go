package metrics

import (
	"context"
	"log/slog"
	"time"
)

// IdentificationEvent records one completed identification. Events are
// emitted fire-and-forget after the response has been prepared; losing one
// must never affect the response path.
type IdentificationEvent struct {
	Breed      string
	Confidence float64
	Duration   time.Duration
	Timestamp  time.Time
}

// Collector consumes identification events on a buffered channel and folds
// them into the stats counters. It also writes the analytics log record for
// each identification.
type Collector struct {
	eventCh chan IdentificationEvent
	stats   *Stats
	logger  *slog.Logger
}

func NewCollector(bufferSize int, supportedBreeds int, stats *Stats, logger *slog.Logger) *Collector {
	if stats == nil {
		stats = NewStats(supportedBreeds, nil)
	}
	return &Collector{
		eventCh: make(chan IdentificationEvent, bufferSize),
		stats:   stats,
		logger:  logger,
	}
}

// EventChannel returns the write side of the event channel. Senders must
// not block: use a select with a default branch.
func (c *Collector) EventChannel() chan<- IdentificationEvent {
	return c.eventCh
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Stats collector started")
	defer c.logger.Info("Stats collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		case <-ctx.Done():
			// Drain remaining events before shutdown
			c.drain()
			return
		}
	}
}

func (c *Collector) processEvent(event IdentificationEvent) {
	c.stats.RecordIdentification(event.Breed)

	c.logger.Info("Identified breed",
		slog.String("breed", event.Breed),
		slog.Float64("confidence", event.Confidence),
		slog.Duration("processing_time", event.Duration))
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		default:
			return
		}
	}
}

// Snapshot returns the current perturbed counter set.
func (c *Collector) Snapshot() Snapshot {
	return c.stats.Snapshot()
}
