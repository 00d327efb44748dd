package inference

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/herdscan/breed-identifier/internal/catalog"
	"github.com/herdscan/breed-identifier/internal/selector"
)

// Config bounds the simulated processing delay and the confidence draw.
type Config struct {
	MinDelay      time.Duration
	MaxDelay      time.Duration
	MinConfidence float64
	MaxConfidence float64
}

// Result is one ephemeral identification outcome. It exists only for the
// single response and is never persisted.
type Result struct {
	ID             uuid.UUID
	Breed          catalog.Record
	Confidence     float64
	Certainty      string
	ProcessingTime time.Duration
}

// Engine produces mock identification results: a simulated delay, a
// weighted breed draw, and a random confidence score. No image bytes are
// ever inspected.
type Engine struct {
	selector selector.Selector
	mutex    sync.Mutex
	rng      *rand.Rand
	cfg      Config
	logger   *slog.Logger
}

// NewEngine validates the config and creates an engine.
// A nil rng falls back to an unpredictable seed.
func NewEngine(sel selector.Selector, rng *rand.Rand, cfg Config, logger *slog.Logger) (*Engine, error) {
	if sel == nil {
		return nil, fmt.Errorf("selector is required")
	}
	if cfg.MinDelay < 0 || cfg.MaxDelay < cfg.MinDelay {
		return nil, fmt.Errorf("invalid delay range [%v, %v]", cfg.MinDelay, cfg.MaxDelay)
	}
	if cfg.MinConfidence < 0 || cfg.MaxConfidence > 100 || cfg.MinConfidence >= cfg.MaxConfidence {
		return nil, fmt.Errorf("invalid confidence range [%v, %v]", cfg.MinConfidence, cfg.MaxConfidence)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Engine{
		selector: sel,
		rng:      rng,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Identify runs one mock identification over the given records. It blocks
// for a random duration inside the configured delay range, then draws a
// breed and a confidence score. The wait is cancelled by ctx, in which
// case ctx.Err() is returned.
func (e *Engine) Identify(ctx context.Context, records []catalog.Record) (*Result, error) {
	start := time.Now()

	if err := e.simulateProcessing(ctx); err != nil {
		return nil, err
	}

	breed := e.selector.Pick(records)
	if breed == nil {
		return nil, fmt.Errorf("selector returned no breed")
	}

	confidence := e.drawConfidence()

	result := &Result{
		ID:             uuid.New(),
		Breed:          *breed,
		Confidence:     confidence,
		Certainty:      CertaintyFor(confidence),
		ProcessingTime: time.Since(start),
	}

	if e.logger != nil {
		e.logger.Debug("Identification complete",
			slog.String("id", result.ID.String()),
			slog.String("breed", breed.Name),
			slog.Float64("confidence", confidence))
	}

	return result, nil
}

// simulateProcessing blocks the current request for a random duration in
// [MinDelay, MaxDelay]. Only this request's goroutine is suspended.
func (e *Engine) simulateProcessing(ctx context.Context) error {
	delay := e.cfg.MinDelay
	if span := e.cfg.MaxDelay - e.cfg.MinDelay; span > 0 {
		e.mutex.Lock()
		delay += time.Duration(e.rng.Int64N(int64(span) + 1))
		e.mutex.Unlock()
	}

	if delay == 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *Engine) drawConfidence() float64 {
	e.mutex.Lock()
	v := e.cfg.MinConfidence + e.rng.Float64()*(e.cfg.MaxConfidence-e.cfg.MinConfidence)
	e.mutex.Unlock()

	return math.Round(v*10) / 10
}

// CertaintyFor maps a confidence score onto its human-readable bucket.
func CertaintyFor(confidence float64) string {
	switch {
	case confidence >= 95:
		return "Very High"
	case confidence >= 90:
		return "High"
	case confidence >= 85:
		return "Moderate"
	default:
		return "Low"
	}
}
