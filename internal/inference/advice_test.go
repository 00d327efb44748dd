package inference_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/herdscan/breed-identifier/internal/catalog"
	"github.com/herdscan/breed-identifier/internal/inference"
)

var _ = Describe("Recommendations", func() {
	var (
		gir    catalog.Record
		murrah catalog.Record
	)

	BeforeEach(func() {
		cat, err := catalog.New()
		Expect(err).NotTo(HaveOccurred())

		gir, err = cat.BySlug("gir")
		Expect(err).NotTo(HaveOccurred())

		murrah, err = cat.BySlug("murrah")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should interpolate breed name and confidence", func() {
		recs := inference.Recommendations(gir, 92.5)
		Expect(recs[0]).To(Equal("This appears to be a Gir with 92.5% confidence"))
	})

	It("should include milk yield, uses and origin", func() {
		recs := inference.Recommendations(gir, 92.5)
		Expect(recs).To(ContainElement(ContainSubstring(gir.MilkYield)))
		Expect(recs).To(ContainElement(ContainSubstring(gir.Origin)))
		Expect(recs).To(ContainElement(ContainSubstring("Milk production")))
	})

	It("should add the high-confidence note at or above 90", func() {
		recs := inference.Recommendations(gir, 90.0)
		Expect(recs).To(ContainElement("High confidence identification - breed characteristics clearly match"))
	})

	It("should suggest veterinary consultation below 90", func() {
		recs := inference.Recommendations(gir, 89.9)
		Expect(recs).To(ContainElement("Moderate confidence - consider additional veterinary consultation"))
	})

	It("should include the heat-stress bullet for cattle", func() {
		recs := inference.Recommendations(gir, 95.0)
		Expect(recs).To(ContainElement("Monitor for heat stress during summer months"))
	})

	It("should include the wallowing bullet for buffalo", func() {
		recs := inference.Recommendations(murrah, 95.0)
		Expect(recs).To(ContainElement("Provide wallowing facility for cooling"))
	})

	It("should never mix species bullets", func() {
		cattleRecs := inference.Recommendations(gir, 95.0)
		Expect(cattleRecs).NotTo(ContainElement("Provide wallowing facility for cooling"))

		buffaloRecs := inference.Recommendations(murrah, 95.0)
		Expect(buffaloRecs).NotTo(ContainElement("Monitor for heat stress during summer months"))
	})
})

var _ = Describe("NextSteps", func() {
	It("should return three common and two species bullets", func() {
		Expect(inference.NextSteps(catalog.SpeciesCattle)).To(HaveLen(5))
		Expect(inference.NextSteps(catalog.SpeciesBuffalo)).To(HaveLen(5))
	})

	It("should share the common bullets across species", func() {
		cattle := inference.NextSteps(catalog.SpeciesCattle)
		buffalo := inference.NextSteps(catalog.SpeciesBuffalo)

		Expect(cattle[:3]).To(Equal(buffalo[:3]))
	})

	It("should include cattle-specific planning steps", func() {
		Expect(inference.NextSteps(catalog.SpeciesCattle)).To(
			ContainElement("Implement proper cattle management practices"))
	})

	It("should include buffalo-specific water planning", func() {
		Expect(inference.NextSteps(catalog.SpeciesBuffalo)).To(
			ContainElement("Ensure adequate water supply for buffalo needs"))
	})
})
