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

var _ = Describe("FieldService", func() {
	var (
		ctrl             *gomock.Controller
		mockRepository   *usecases_mocks.MockFieldRepository
		mockRequirements *usecases_mocks.MockRequirementService
		realBroker       *async.LocalBroker
		service          *usecases.SimpleFieldService
		ctx              context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = usecases_mocks.NewMockFieldRepository(ctrl)
		mockRequirements = usecases_mocks.NewMockRequirementService(ctrl)
		realBroker = async.NewLocalBroker()
		ctx = context.Background()

		service = usecases.NewFieldService(mockRepository, mockRequirements, realBroker)
	})

	AfterEach(func() {
		realBroker.Stop()
		ctrl.Finish()
	})

	Context("CreateField", func() {
		var field domain.FieldDefinition

		BeforeEach(func() {
			var err error
			field, err = domain.NewFieldDefinitionBuilder().
				WithLabel("Vintage Note").
				Build()
			Expect(err).ToNot(HaveOccurred())
		})

		It("assigns the next display order slot and seeds a global rule", func() {
			mockRepository.EXPECT().GetByName(ctx, "vintage_note").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)
			mockRepository.EXPECT().MaxDisplayOrder(ctx).Return(50, nil)
			mockRepository.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, created domain.FieldDefinition) error {
					Expect(created.DisplayOrder).To(Equal(60))
					return nil
				})
			mockRequirements.EXPECT().SetRequirement(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, rule domain.RequirementRule) (domain.RequirementRule, error) {
					Expect(rule.FieldName).To(Equal("vintage_note"))
					Expect(rule.Scope.IsGlobal()).To(BeTrue())
					Expect(rule.Enabled).To(BeTrue())
					return rule, nil
				})

			created, err := service.CreateField(ctx, field, domain.GlobalScope(), domain.ResolvedField{Enabled: true})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.DisplayOrder).To(Equal(60))
		})

		It("writes the initial rule at the caller's scope", func() {
			scope := domain.CategoryScope("cat-wines")

			mockRepository.EXPECT().GetByName(ctx, "vintage_note").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)
			mockRepository.EXPECT().MaxDisplayOrder(ctx).Return(50, nil)
			mockRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			mockRequirements.EXPECT().SetRequirement(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, rule domain.RequirementRule) (domain.RequirementRule, error) {
					Expect(rule.Scope).To(Equal(scope))
					Expect(rule.Required).To(BeTrue())
					return rule, nil
				})

			_, err := service.CreateField(ctx, field, scope, domain.ResolvedField{Enabled: true, Required: true})

			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects a duplicate normalized name", func() {
			mockRepository.EXPECT().GetByName(ctx, "vintage_note").Return(domain.FieldDefinition{Name: "vintage_note"}, nil)

			_, err := service.CreateField(ctx, field, domain.GlobalScope(), domain.ResolvedField{})

			Expect(err).To(MatchError(usecases.ErrFieldDuplicated))
		})

		It("surfaces a storage-level duplicate from the unique index", func() {
			mockRepository.EXPECT().GetByName(ctx, "vintage_note").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)
			mockRepository.EXPECT().MaxDisplayOrder(ctx).Return(50, nil)
			mockRepository.EXPECT().Create(ctx, gomock.Any()).Return(usecases.ErrFieldDuplicated)

			_, err := service.CreateField(ctx, field, domain.GlobalScope(), domain.ResolvedField{})

			Expect(err).To(MatchError(usecases.ErrFieldDuplicated))
		})

		It("removes the field again when the initial rule cannot be written", func() {
			scope := domain.SubcategoryScope("ghost")

			mockRepository.EXPECT().GetByName(ctx, "vintage_note").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)
			mockRepository.EXPECT().MaxDisplayOrder(ctx).Return(50, nil)
			mockRepository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			mockRequirements.EXPECT().SetRequirement(ctx, gomock.Any()).Return(
				domain.RequirementRule{}, usecases.ErrScopeNotFound)
			mockRepository.EXPECT().DeleteCascade(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, deleted domain.FieldDefinition) error {
					Expect(deleted.Name).To(Equal("vintage_note"))
					return nil
				})

			_, err := service.CreateField(ctx, field, scope, domain.ResolvedField{Enabled: true})

			Expect(err).To(MatchError(usecases.ErrScopeNotFound))
		})
	})

	Context("UpdateField", func() {
		It("cascades a rename when the label normalizes to a new name", func() {
			existing := domain.FieldDefinition{ID: "field-1", Name: "old_name", Label: "Old Name"}
			newLabel := "Tasting Notes"

			mockRepository.EXPECT().GetByName(ctx, "old_name").Return(existing, nil)
			mockRepository.EXPECT().GetByName(ctx, "tasting_notes").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)
			mockRepository.EXPECT().Rename(ctx, gomock.Any(), "old_name").DoAndReturn(
				func(_ context.Context, renamed domain.FieldDefinition, _ string) error {
					Expect(renamed.Name).To(Equal("tasting_notes"))
					Expect(renamed.ID).To(Equal(domain.ID("field-1")))
					return nil
				})

			updated, err := service.UpdateField(ctx, "old_name", usecases.FieldUpdate{Label: &newLabel})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("tasting_notes"))
		})

		It("refuses to rename a builtin field", func() {
			existing := domain.FieldDefinition{Name: "region", Label: "Région", IsBuiltin: true}
			newLabel := "Terroir"

			mockRepository.EXPECT().GetByName(ctx, "region").Return(existing, nil)

			_, err := service.UpdateField(ctx, "region", usecases.FieldUpdate{Label: &newLabel})

			Expect(err).To(MatchError(usecases.ErrBuiltinFieldProtected))
		})

		It("allows a builtin label edit that keeps the normalized name", func() {
			existing := domain.FieldDefinition{Name: "region", Label: "Région", IsBuiltin: true}
			newLabel := "Region"

			mockRepository.EXPECT().GetByName(ctx, "region").Return(existing, nil)
			mockRepository.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.FieldDefinition) error {
					Expect(updated.Label).To(Equal("Region"))
					Expect(updated.Name).To(Equal("region"))
					return nil
				})

			updated, err := service.UpdateField(ctx, "region", usecases.FieldUpdate{Label: &newLabel})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("region"))
		})

		It("updates presentation properties in place without a cascade", func() {
			existing := domain.FieldDefinition{Name: "region", Label: "Région", IsBuiltin: true}
			helpText := "La région d'origine"

			mockRepository.EXPECT().GetByName(ctx, "region").Return(existing, nil)
			mockRepository.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.FieldDefinition) error {
					Expect(updated.HelpText).To(Equal(helpText))
					Expect(updated.Name).To(Equal("region"))
					return nil
				})

			_, err := service.UpdateField(ctx, "region", usecases.FieldUpdate{HelpText: &helpText})

			Expect(err).ToNot(HaveOccurred())
		})

		It("wraps repository failures from the rename cascade", func() {
			existing := domain.FieldDefinition{Name: "old_name", Label: "Old Name"}
			newLabel := "New Name"

			mockRepository.EXPECT().GetByName(ctx, "old_name").Return(existing, nil)
			mockRepository.EXPECT().GetByName(ctx, "new_name").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)
			mockRepository.EXPECT().Rename(ctx, gomock.Any(), "old_name").Return(assertableError("tx aborted"))

			_, err := service.UpdateField(ctx, "old_name", usecases.FieldUpdate{Label: &newLabel})

			Expect(err).To(MatchError(usecases.ErrAtomicRewriteFailed))
		})
	})

	Context("DeleteField", func() {
		It("refuses to delete a builtin field", func() {
			mockRepository.EXPECT().GetByName(ctx, "volume_ml").Return(domain.FieldDefinition{Name: "volume_ml", IsBuiltin: true}, nil)

			err := service.DeleteField(ctx, "volume_ml")

			Expect(err).To(MatchError(usecases.ErrBuiltinFieldProtected))
		})

		It("cascades the delete for a custom field and notifies subscribers", func() {
			field := domain.FieldDefinition{Name: "tasting_notes"}
			subscription, err := realBroker.Subscribe(usecases.SchemaEventsTopic)
			Expect(err).ToNot(HaveOccurred())

			mockRepository.EXPECT().GetByName(ctx, "tasting_notes").Return(field, nil)
			mockRepository.EXPECT().DeleteCascade(ctx, field).Return(nil)

			Expect(service.DeleteField(ctx, "tasting_notes")).To(Succeed())

			var message async.BrokerMessage
			Eventually(subscription.Receiver).Should(Receive(&message))
			Expect(message.Event).To(Equal(usecases.EventFieldDeleted))
		})

		It("returns not found for an unknown field", func() {
			mockRepository.EXPECT().GetByName(ctx, "ghost").Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)

			err := service.DeleteField(ctx, "ghost")

			Expect(err).To(MatchError(usecases.ErrFieldNotFound))
		})
	})
})

type assertableError string

func (e assertableError) Error() string { return string(e) }
