package catalog_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/herdscan/breed-identifier/internal/catalog"
)

func TestCatalog(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Suite")
}

var _ = Describe("Catalog", func() {
	var cat *catalog.Catalog

	BeforeEach(func() {
		var err error
		cat, err = catalog.New()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("should load five breeds", func() {
			Expect(cat.Len()).To(Equal(5))
		})

		It("should have selection weights summing to 1.0", func() {
			total := 0.0
			for _, r := range cat.All() {
				total += r.SelectionWeight
			}
			Expect(total).To(BeNumerically("~", 1.0, 1e-9))
		})
	})

	Describe("ByID", func() {
		It("should return the Murrah record for id 3", func() {
			breed, err := cat.ByID(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(breed.Name).To(Equal("Murrah"))
			Expect(breed.Species).To(Equal(catalog.SpeciesBuffalo))
			Expect(breed.Origin).To(Equal("Rohtak, Hisar, Haryana, India"))
		})

		It("should return ErrNotFound for an unknown id", func() {
			_, err := cat.ByID(999)
			Expect(err).To(MatchError(catalog.ErrNotFound))
		})
	})

	Describe("BySlug", func() {
		It("should resolve every expected slug", func() {
			for _, slug := range []string{"gir", "sahiwal", "murrah", "red_sindhi", "nili_ravi"} {
				breed, err := cat.BySlug(slug)
				Expect(err).NotTo(HaveOccurred())
				Expect(breed.Slug).To(Equal(slug))
			}
		})

		It("should return ErrNotFound for an unknown slug", func() {
			_, err := cat.BySlug("jersey")
			Expect(err).To(MatchError(catalog.ErrNotFound))
		})
	})

	Describe("partitions", func() {
		It("should split into three cattle and two buffalo", func() {
			Expect(cat.Cattle()).To(HaveLen(3))
			Expect(cat.Buffalo()).To(HaveLen(2))
		})

		It("should keep partitions disjoint and complete", func() {
			Expect(len(cat.Cattle()) + len(cat.Buffalo())).To(Equal(cat.Len()))
			for _, r := range cat.Cattle() {
				Expect(r.Species).To(Equal(catalog.SpeciesCattle))
			}
			for _, r := range cat.Buffalo() {
				Expect(r.Species).To(Equal(catalog.SpeciesBuffalo))
			}
		})
	})

	Describe("All", func() {
		It("should return records in stable table order", func() {
			all := cat.All()
			ids := make([]int, 0, len(all))
			for _, r := range all {
				ids = append(ids, r.ID)
			}
			Expect(ids).To(Equal([]int{1, 2, 3, 4, 5}))
		})

		It("should return an independent copy", func() {
			all := cat.All()
			all[0].Name = "mutated"

			fresh := cat.All()
			Expect(fresh[0].Name).To(Equal("Gir"))
		})
	})
})
