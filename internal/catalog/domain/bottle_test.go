package domain_test

import (
	"cellar-server/internal/catalog/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("AttributeBag", func() {
	ginkgo.Context("HasValue", func() {
		ginkgo.It("treats missing, nil and blank values as empty", func() {
			bag := domain.AttributeBag{
				"region":      "Bourgogne",
				"year":        2019,
				"grape":       "   ",
				"description": nil,
			}

			gomega.Expect(bag.HasValue("region")).To(gomega.BeTrue())
			gomega.Expect(bag.HasValue("year")).To(gomega.BeTrue())
			gomega.Expect(bag.HasValue("grape")).To(gomega.BeFalse())
			gomega.Expect(bag.HasValue("description")).To(gomega.BeFalse())
			gomega.Expect(bag.HasValue("volume_ml")).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Rename", func() {
		ginkgo.It("moves the value to the new key", func() {
			bag := domain.AttributeBag{"region": "Alsace"}

			gomega.Expect(bag.Rename("region", "appellation")).To(gomega.BeTrue())
			gomega.Expect(bag).To(gomega.Equal(domain.AttributeBag{"appellation": "Alsace"}))
		})

		ginkgo.It("reports false when the old key is absent", func() {
			bag := domain.AttributeBag{}

			gomega.Expect(bag.Rename("region", "appellation")).To(gomega.BeFalse())
			gomega.Expect(bag).To(gomega.BeEmpty())
		})

		ginkgo.It("overwrites any value already under the new key", func() {
			bag := domain.AttributeBag{"region": "Alsace", "appellation": "stale"}

			bag.Rename("region", "appellation")

			gomega.Expect(bag["appellation"]).To(gomega.Equal("Alsace"))
		})
	})

	ginkgo.Context("Remove", func() {
		ginkgo.It("drops the key and reports whether it existed", func() {
			bag := domain.AttributeBag{"grape": "Pinot Noir"}

			gomega.Expect(bag.Remove("grape")).To(gomega.BeTrue())
			gomega.Expect(bag.Remove("grape")).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Clone", func() {
		ginkgo.It("returns an independent copy", func() {
			bag := domain.AttributeBag{"region": "Jura"}
			clone := bag.Clone()
			clone["region"] = "Savoie"

			gomega.Expect(bag["region"]).To(gomega.Equal("Jura"))
		})
	})
})

var _ = ginkgo.Describe("Bottle", func() {
	ginkgo.Context("builder", func() {
		ginkgo.It("defaults quantity to one and copies the attribute bag", func() {
			attributes := domain.AttributeBag{"year": 2015}
			bottle, err := domain.NewBottleBuilder().
				WithName("Clos de Tart").
				WithSubcategoryID("sub-1").
				WithAttributes(attributes).
				Build()

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(bottle.Quantity).To(gomega.Equal(1))

			attributes["year"] = 1999
			gomega.Expect(bottle.Attributes["year"]).To(gomega.Equal(2015))
		})

		ginkgo.It("rejects a negative quantity", func() {
			_, err := domain.NewBottleBuilder().
				WithName("Clos de Tart").
				WithQuantity(-1).
				Build()

			gomega.Expect(err).To(gomega.MatchError(domain.ErrInvalidQuantity))
		})
	})
})
