package inference_test

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/herdscan/breed-identifier/internal/catalog"
	"github.com/herdscan/breed-identifier/internal/inference"
	"github.com/herdscan/breed-identifier/internal/selector"
)

func TestInference(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inference Suite")
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

var _ = Describe("CertaintyFor", func() {
	DescribeTable("maps confidence onto its bucket",
		func(confidence float64, expected string) {
			Expect(inference.CertaintyFor(confidence)).To(Equal(expected))
		},
		Entry("far above the very-high cutoff", 97.5, "Very High"),
		Entry("exactly at the very-high cutoff", 95.0, "Very High"),
		Entry("just below the very-high cutoff", 94.9, "High"),
		Entry("exactly at the high cutoff", 90.0, "High"),
		Entry("just below the high cutoff", 89.9, "Moderate"),
		Entry("exactly at the moderate cutoff", 85.0, "Moderate"),
		Entry("just below the moderate cutoff", 84.9, "Low"),
		Entry("very low confidence", 10.0, "Low"),
		Entry("zero confidence", 0.0, "Low"),
	)
})

var _ = Describe("Engine", func() {
	var (
		log     *slog.Logger
		records []catalog.Record
	)

	instantConfig := inference.Config{
		MinDelay:      0,
		MaxDelay:      0,
		MinConfidence: 88.0,
		MaxConfidence: 97.5,
	}

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))

		cat, err := catalog.New()
		Expect(err).NotTo(HaveOccurred())
		records = cat.All()
	})

	Describe("NewEngine", func() {
		It("should reject a nil selector", func() {
			_, err := inference.NewEngine(nil, nil, instantConfig, log)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an inverted delay range", func() {
			cfg := instantConfig
			cfg.MinDelay = 2 * time.Second
			cfg.MaxDelay = 1 * time.Second

			_, err := inference.NewEngine(selector.NewWeightedSelector(nil), nil, cfg, log)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a confidence range outside [0, 100]", func() {
			cfg := instantConfig
			cfg.MaxConfidence = 120

			_, err := inference.NewEngine(selector.NewWeightedSelector(nil), nil, cfg, log)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an empty confidence range", func() {
			cfg := instantConfig
			cfg.MinConfidence = 95
			cfg.MaxConfidence = 95

			_, err := inference.NewEngine(selector.NewWeightedSelector(nil), nil, cfg, log)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Identify", func() {
		var engine *inference.Engine

		BeforeEach(func() {
			var err error
			engine, err = inference.NewEngine(
				selector.NewWeightedSelector(seededRand(1)),
				seededRand(2),
				instantConfig,
				log,
			)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return a breed from the catalog", func() {
			result, err := engine.Identify(context.Background(), records)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Breed.ID).To(BeNumerically(">=", 1))
			Expect(result.Breed.ID).To(BeNumerically("<=", 5))
		})

		It("should draw confidence inside the configured range, one decimal place", func() {
			for i := 0; i < 200; i++ {
				result, err := engine.Identify(context.Background(), records)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.Confidence).To(BeNumerically(">=", 88.0))
				Expect(result.Confidence).To(BeNumerically("<=", 97.5))

				scaled := result.Confidence * 10
				Expect(scaled).To(BeNumerically("~", math.Round(scaled), 1e-9))
			}
		})

		It("should attach the matching certainty bucket", func() {
			result, err := engine.Identify(context.Background(), records)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Certainty).To(Equal(inference.CertaintyFor(result.Confidence)))
		})

		It("should assign a unique id per result", func() {
			first, err := engine.Identify(context.Background(), records)
			Expect(err).NotTo(HaveOccurred())

			second, err := engine.Identify(context.Background(), records)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID).NotTo(Equal(second.ID))
		})

		It("should report a non-negative processing time", func() {
			result, err := engine.Identify(context.Background(), records)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ProcessingTime).To(BeNumerically(">=", 0))
		})

		It("should fail when the record list is empty", func() {
			_, err := engine.Identify(context.Background(), []catalog.Record{})
			Expect(err).To(HaveOccurred())
		})

		Context("with a simulated delay", func() {
			BeforeEach(func() {
				cfg := instantConfig
				cfg.MinDelay = 50 * time.Millisecond
				cfg.MaxDelay = 80 * time.Millisecond

				var err error
				engine, err = inference.NewEngine(
					selector.NewWeightedSelector(seededRand(1)),
					seededRand(2),
					cfg,
					log,
				)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should block for at least the minimum delay", func() {
				start := time.Now()
				_, err := engine.Identify(context.Background(), records)
				Expect(err).NotTo(HaveOccurred())
				Expect(time.Since(start)).To(BeNumerically(">=", 50*time.Millisecond))
			})

			It("should stop waiting when the context is cancelled", func() {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				start := time.Now()
				_, err := engine.Identify(ctx, records)
				Expect(err).To(MatchError(context.Canceled))
				Expect(time.Since(start)).To(BeNumerically("<", 50*time.Millisecond))
			})
		})
	})
})
