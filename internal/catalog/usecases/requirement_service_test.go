package usecases_test

import (
	"context"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/usecases"
	"cellar-server/internal/infra/async"
	usecases_mocks "cellar-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RequirementService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *usecases_mocks.MockRequirementRepository
		mockFields     *usecases_mocks.MockFieldRepository
		mockCategories *usecases_mocks.MockCategoryRepository
		realBroker     *async.LocalBroker
		service        *usecases.SimpleRequirementService
		ctx            context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = usecases_mocks.NewMockRequirementRepository(ctrl)
		mockFields = usecases_mocks.NewMockFieldRepository(ctrl)
		mockCategories = usecases_mocks.NewMockCategoryRepository(ctrl)
		realBroker = async.NewLocalBroker()
		ctx = context.Background()

		service = usecases.NewRequirementService(mockRepository, mockFields, mockCategories, realBroker)
	})

	AfterEach(func() {
		realBroker.Stop()
		ctrl.Finish()
	})

	Context("SetRequirement", func() {
		It("forces enabled on a required rule before persisting", func() {
			mockFields.EXPECT().GetByName(ctx, "region").Return(domain.FieldDefinition{Name: "region"}, nil)
			mockRepository.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, rule domain.RequirementRule) error {
					Expect(rule.Enabled).To(BeTrue())
					Expect(rule.Required).To(BeTrue())
					return nil
				})

			saved, err := service.SetRequirement(ctx, domain.RequirementRule{
				FieldName: "region",
				Scope:     domain.GlobalScope(),
				Enabled:   false,
				Required:  true,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(saved.Enabled).To(BeTrue())
		})

		It("rejects a rule for an unknown field", func() {
			mockFields.EXPECT().GetByName(ctx, "ghost").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)

			_, err := service.SetRequirement(ctx, domain.RequirementRule{
				FieldName: "ghost",
				Scope:     domain.GlobalScope(),
			})

			Expect(err).To(MatchError(usecases.ErrFieldNotFound))
		})

		It("rejects a rule for an unknown subcategory scope", func() {
			mockFields.EXPECT().GetByName(ctx, "region").Return(domain.FieldDefinition{Name: "region"}, nil)
			mockCategories.EXPECT().GetSubcategoryByID(ctx, domain.ID("ghost")).Return(
				domain.Subcategory{}, usecases.ErrSubcategoryNotFound)

			_, err := service.SetRequirement(ctx, domain.RequirementRule{
				FieldName: "region",
				Scope:     domain.SubcategoryScope("ghost"),
			})

			Expect(err).To(MatchError(usecases.ErrScopeNotFound))
		})

		It("records the owning category on subcategory scoped rules", func() {
			mockFields.EXPECT().GetByName(ctx, "region").Return(domain.FieldDefinition{Name: "region"}, nil)
			mockCategories.EXPECT().GetSubcategoryByID(ctx, domain.ID("sub-1")).Return(
				domain.Subcategory{ID: "sub-1", CategoryID: "cat-1"}, nil)
			mockRepository.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, rule domain.RequirementRule) error {
					Expect(rule.CategoryID).To(Equal(domain.ID("cat-1")))
					return nil
				})

			_, err := service.SetRequirement(ctx, domain.RequirementRule{
				FieldName: "region",
				Scope:     domain.SubcategoryScope("sub-1"),
				Enabled:   true,
			})

			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects an invalid scope kind", func() {
			_, err := service.SetRequirement(ctx, domain.RequirementRule{
				FieldName: "region",
				Scope:     domain.Scope{Kind: domain.ScopeKind("tenant")},
			})

			Expect(err).To(MatchError(usecases.ErrScopeNotFound))
		})
	})
})
