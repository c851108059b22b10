package usecases_test

import (
	"context"
	"errors"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/usecases"
	usecases_mocks "cellar-server/test/unit/doubles/catalog/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SchemaResolver", func() {
	var (
		ctrl             *gomock.Controller
		mockFields       *usecases_mocks.MockFieldRepository
		mockRequirements *usecases_mocks.MockRequirementRepository
		mockCategories   *usecases_mocks.MockCategoryRepository
		resolver         *usecases.SimpleSchemaResolver
		ctx              context.Context
	)

	fields := []domain.FieldDefinition{
		{Name: "region"},
		{Name: "year"},
		{Name: "vintage_note"},
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockFields = usecases_mocks.NewMockFieldRepository(ctrl)
		mockRequirements = usecases_mocks.NewMockRequirementRepository(ctrl)
		mockCategories = usecases_mocks.NewMockCategoryRepository(ctrl)
		ctx = context.Background()

		resolver = usecases.NewSchemaResolver(mockFields, mockRequirements, mockCategories)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Resolve", func() {
		It("defaults every field to disabled and optional at the global scope", func() {
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)
			mockRequirements.EXPECT().FindByScope(ctx, domain.GlobalScope()).Return(nil, nil)

			schema, err := resolver.Resolve(ctx, domain.GlobalScope())

			Expect(err).ToNot(HaveOccurred())
			Expect(schema).To(HaveLen(3))
			Expect(schema["region"]).To(Equal(domain.ResolvedField{}))
		})

		It("lets a category rule replace the global rule outright", func() {
			categoryScope := domain.CategoryScope("cat-wines")

			mockCategories.EXPECT().GetByID(ctx, domain.ID("cat-wines")).Return(domain.Category{ID: "cat-wines"}, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)
			mockRequirements.EXPECT().FindByScope(ctx, domain.GlobalScope()).Return([]domain.RequirementRule{
				{FieldName: "region", Scope: domain.GlobalScope(), Enabled: true, Required: true},
				{FieldName: "year", Scope: domain.GlobalScope(), Enabled: true},
			}, nil)
			mockRequirements.EXPECT().FindByScope(ctx, categoryScope).Return([]domain.RequirementRule{
				{FieldName: "region", Scope: categoryScope, Enabled: false, Required: false},
			}, nil)

			schema, err := resolver.Resolve(ctx, categoryScope)

			Expect(err).ToNot(HaveOccurred())
			// The category rule fully undoes the global requirement rather
			// than merging with it.
			Expect(schema["region"]).To(Equal(domain.ResolvedField{}))
			Expect(schema["year"]).To(Equal(domain.ResolvedField{Enabled: true}))
		})

		It("walks global, category and subcategory in order for a subcategory", func() {
			subcategoryScope := domain.SubcategoryScope("sub-champagne")
			categoryScope := domain.CategoryScope("cat-wines")

			mockCategories.EXPECT().GetSubcategoryByID(ctx, domain.ID("sub-champagne")).Return(
				domain.Subcategory{ID: "sub-champagne", CategoryID: "cat-wines"}, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)
			mockRequirements.EXPECT().FindByScope(ctx, domain.GlobalScope()).Return([]domain.RequirementRule{
				{FieldName: "vintage_note", Scope: domain.GlobalScope(), Enabled: true},
			}, nil)
			mockRequirements.EXPECT().FindByScope(ctx, categoryScope).Return([]domain.RequirementRule{
				{FieldName: "vintage_note", Scope: categoryScope, Enabled: true, Required: true},
			}, nil)
			mockRequirements.EXPECT().FindByScope(ctx, subcategoryScope).Return(nil, nil)

			schema, err := resolver.Resolve(ctx, subcategoryScope)

			Expect(err).ToNot(HaveOccurred())
			// No subcategory rule, so the category requirement is inherited.
			Expect(schema["vintage_note"]).To(Equal(domain.ResolvedField{Enabled: true, Required: true}))
		})

		It("ignores rules for fields no longer in the registry", func() {
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)
			mockRequirements.EXPECT().FindByScope(ctx, domain.GlobalScope()).Return([]domain.RequirementRule{
				{FieldName: "deleted_field", Scope: domain.GlobalScope(), Enabled: true, Required: true},
			}, nil)

			schema, err := resolver.Resolve(ctx, domain.GlobalScope())

			Expect(err).ToNot(HaveOccurred())
			Expect(schema).ToNot(HaveKey("deleted_field"))
		})

		It("rejects an unknown subcategory", func() {
			mockCategories.EXPECT().GetSubcategoryByID(ctx, domain.ID("ghost")).Return(
				domain.Subcategory{}, usecases.ErrSubcategoryNotFound)

			_, err := resolver.Resolve(ctx, domain.SubcategoryScope("ghost"))

			Expect(err).To(MatchError(usecases.ErrScopeNotFound))
		})
	})

	Context("ResolveAll", func() {
		It("snapshots every scope with inheritance applied per level", func() {
			categoryScope := domain.CategoryScope("cat-wines")
			subcategoryScope := domain.SubcategoryScope("sub-champagne")

			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)
			mockRequirements.EXPECT().FindAll(ctx).Return([]domain.RequirementRule{
				{FieldName: "region", Scope: domain.GlobalScope(), Enabled: true, Required: true},
				{FieldName: "region", Scope: categoryScope, Enabled: false, Required: false},
				{FieldName: "year", Scope: subcategoryScope, Enabled: true, Required: true},
			}, nil)
			mockCategories.EXPECT().FindAll(ctx).Return([]domain.Category{
				{ID: "cat-wines", Subcategories: []domain.Subcategory{
					{ID: "sub-champagne", CategoryID: "cat-wines"},
				}},
				{ID: "cat-spirits"},
			}, nil)

			snapshot, err := resolver.ResolveAll(ctx)

			Expect(err).ToNot(HaveOccurred())
			Expect(snapshot).To(HaveLen(4))
			Expect(snapshot[domain.GlobalScope()]["region"]).To(Equal(domain.ResolvedField{Enabled: true, Required: true}))
			// The category rule undoes the global requirement, and the
			// subcategory inherits the undone state.
			Expect(snapshot[categoryScope]["region"]).To(Equal(domain.ResolvedField{}))
			Expect(snapshot[subcategoryScope]["region"]).To(Equal(domain.ResolvedField{}))
			Expect(snapshot[subcategoryScope]["year"]).To(Equal(domain.ResolvedField{Enabled: true, Required: true}))
			// A category without rules of its own mirrors the global level.
			Expect(snapshot[domain.CategoryScope("cat-spirits")]["region"]).To(Equal(domain.ResolvedField{Enabled: true, Required: true}))
		})

		It("propagates repository failures", func() {
			mockFields.EXPECT().FindAll(ctx).Return(nil, errors.New("database error"))

			_, err := resolver.ResolveAll(ctx)

			Expect(err).To(MatchError(ContainSubstring("database error")))
		})
	})
})
