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

var _ = Describe("BottleValidator", func() {
	var (
		ctrl         *gomock.Controller
		mockResolver *usecases_mocks.MockSchemaResolver
		mockFields   *usecases_mocks.MockFieldRepository
		validator    *usecases.SimpleBottleValidator
		ctx          context.Context
	)

	scope := domain.SubcategoryScope("sub-champagne")

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockResolver = usecases_mocks.NewMockSchemaResolver(ctrl)
		mockFields = usecases_mocks.NewMockFieldRepository(ctrl)
		ctx = context.Background()

		validator = usecases.NewBottleValidator(mockResolver, mockFields)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("ValidateAttributes", func() {
		schema := domain.ResolvedSchema{
			"region":    {Enabled: true, Required: true},
			"year":      {Enabled: true, Required: true},
			"grape":     {Enabled: true},
			"volume_ml": {},
		}

		fields := []domain.FieldDefinition{
			{Name: "region", Label: "Région"},
			{Name: "year", Label: "Année"},
			{Name: "grape", Label: "Cépage"},
			{Name: "volume_ml", Label: "Contenance (mL)"},
		}

		It("accepts a bag covering every required field", func() {
			mockResolver.EXPECT().Resolve(ctx, scope).Return(schema, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)

			err := validator.ValidateAttributes(ctx, scope, domain.AttributeBag{
				"region": "Champagne",
				"year":   2015,
			})

			Expect(err).ToNot(HaveOccurred())
		})

		It("collects every missing required field in one error", func() {
			mockResolver.EXPECT().Resolve(ctx, scope).Return(schema, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)

			err := validator.ValidateAttributes(ctx, scope, domain.AttributeBag{
				"grape": "Chardonnay",
			})

			var validationErr *usecases.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Violations).To(HaveLen(2))
			Expect(validationErr.Violations[0].FieldName).To(Equal("region"))
			Expect(validationErr.Violations[1].FieldName).To(Equal("year"))
			Expect(validationErr.Violations[0].Label).To(Equal("Région"))
		})

		It("validates against a bare category when no subcategory is chosen", func() {
			categoryScope := domain.CategoryScope("cat-wines")

			mockResolver.EXPECT().Resolve(ctx, categoryScope).Return(schema, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)

			err := validator.ValidateAttributes(ctx, categoryScope, domain.AttributeBag{
				"year": 2015,
			})

			var validationErr *usecases.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Violations).To(HaveLen(1))
			Expect(validationErr.Violations[0].FieldName).To(Equal("region"))
		})

		It("treats a blank string as missing", func() {
			mockResolver.EXPECT().Resolve(ctx, scope).Return(schema, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)

			err := validator.ValidateAttributes(ctx, scope, domain.AttributeBag{
				"region": "  ",
				"year":   2015,
			})

			var validationErr *usecases.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Violations).To(HaveLen(1))
			Expect(validationErr.Violations[0].FieldName).To(Equal("region"))
		})

		It("does not complain about optional or disabled fields", func() {
			mockResolver.EXPECT().Resolve(ctx, scope).Return(
				domain.ResolvedSchema{"grape": {Enabled: true}}, nil)
			mockFields.EXPECT().FindAll(ctx).Return(fields, nil)

			err := validator.ValidateAttributes(ctx, scope, domain.AttributeBag{})

			Expect(err).ToNot(HaveOccurred())
		})

		It("propagates scope resolution failures", func() {
			mockResolver.EXPECT().Resolve(ctx, scope).Return(
				nil, usecases.ErrScopeNotFound)

			err := validator.ValidateAttributes(ctx, scope, domain.AttributeBag{})

			Expect(err).To(MatchError(usecases.ErrScopeNotFound))
		})
	})
})
