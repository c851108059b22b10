package domain_test

import (
	"cellar-server/internal/catalog/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RequirementRule", func() {
	ginkgo.Context("Normalize", func() {
		ginkgo.It("forces a required field to be enabled", func() {
			rule := domain.RequirementRule{
				FieldName: "vintage_note",
				Scope:     domain.GlobalScope(),
				Enabled:   false,
				Required:  true,
			}

			rule.Normalize()

			gomega.Expect(rule.Enabled).To(gomega.BeTrue())
			gomega.Expect(rule.Required).To(gomega.BeTrue())
		})

		ginkgo.It("leaves an optional disabled field untouched", func() {
			rule := domain.RequirementRule{
				FieldName: "vintage_note",
				Scope:     domain.GlobalScope(),
			}

			rule.Normalize()

			gomega.Expect(rule.Enabled).To(gomega.BeFalse())
			gomega.Expect(rule.Required).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Scope", func() {
		ginkgo.It("recognizes the three scope kinds", func() {
			gomega.Expect(domain.GlobalScope().IsGlobal()).To(gomega.BeTrue())
			gomega.Expect(domain.CategoryScope("cat-1").IsGlobal()).To(gomega.BeFalse())
			gomega.Expect(domain.SubcategoryScope("sub-1").Kind).To(gomega.Equal(domain.ScopeKindSubcategory))
		})

		ginkgo.It("rejects unknown scope kinds", func() {
			gomega.Expect(domain.ScopeKind("tenant").IsValid()).To(gomega.BeFalse())
		})
	})
})
