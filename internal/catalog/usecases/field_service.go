package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/infra/async"
)

const (
	SchemaEventsTopic async.BrokerTopicName = "schema-events"

	EventFieldCreated       = "field_created"
	EventFieldUpdated       = "field_updated"
	EventFieldRenamed       = "field_renamed"
	EventFieldDeleted       = "field_deleted"
	EventRequirementUpdated = "requirement_updated"
)

// FieldRenamedEvent is the broker payload emitted after a cascading rename.
type FieldRenamedEvent struct {
	OldName string                 `json:"old_name"`
	Field   domain.FieldDefinition `json:"field"`
}

func NewFieldService(
	repository FieldRepository,
	requirements RequirementService,
	broker async.InternalBroker,
) *SimpleFieldService {
	return &SimpleFieldService{
		repository:   repository,
		requirements: requirements,
		broker:       broker,
	}
}

var _ FieldService = &SimpleFieldService{}

type SimpleFieldService struct {
	repository   FieldRepository
	requirements RequirementService
	broker       async.InternalBroker
}

func (s *SimpleFieldService) CreateField(ctx context.Context, field domain.FieldDefinition, scope domain.Scope, initial domain.ResolvedField) (domain.FieldDefinition, error) {
	_, err := s.repository.GetByName(ctx, field.Name)
	if err == nil {
		slog.Warn("field duplicated", slog.String("name", field.Name))
		return domain.FieldDefinition{}, ErrFieldDuplicated
	}
	if !errors.Is(err, ErrFieldNotFound) {
		return domain.FieldDefinition{}, fmt.Errorf("checking field name: %w", err)
	}

	if field.DisplayOrder == 0 {
		maxOrder, err := s.repository.MaxDisplayOrder(ctx)
		if err != nil {
			return domain.FieldDefinition{}, fmt.Errorf("finding display order: %w", err)
		}
		field.DisplayOrder = maxOrder + domain.DisplayOrderStep
	}

	if err := s.repository.Create(ctx, field); err != nil {
		if errors.Is(err, ErrFieldDuplicated) {
			slog.Warn("field duplicated", slog.String("name", field.Name))
			return domain.FieldDefinition{}, ErrFieldDuplicated
		}
		slog.Error("creating field", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, fmt.Errorf("creating field: %w", err)
	}

	rule := domain.RequirementRule{
		FieldName: field.Name,
		Scope:     scope,
		Enabled:   initial.Enabled,
		Required:  initial.Required,
	}
	if _, err := s.requirements.SetRequirement(ctx, rule); err != nil {
		// The field must not survive without its initial rule.
		if deleteErr := s.repository.DeleteCascade(ctx, field); deleteErr != nil {
			slog.Error("rolling back field without initial requirement",
				slog.String("name", field.Name),
				slog.String("error", deleteErr.Error()))
		}
		return domain.FieldDefinition{}, fmt.Errorf("setting initial requirement: %w", err)
	}

	s.notify(ctx, EventFieldCreated, field)
	slog.Info("field created",
		slog.String("name", field.Name),
		slog.Int("display_order", field.DisplayOrder))

	return field, nil
}

func (s *SimpleFieldService) GetField(ctx context.Context, name string) (domain.FieldDefinition, error) {
	field, err := s.repository.GetByName(ctx, name)
	if errors.Is(err, ErrFieldNotFound) {
		return domain.FieldDefinition{}, ErrFieldNotFound
	}
	if err != nil {
		slog.Error("getting field", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, fmt.Errorf("getting field: %w", err)
	}

	return field, nil
}

func (s *SimpleFieldService) AllFields(ctx context.Context) ([]domain.FieldDefinition, error) {
	fields, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("getting all fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting all fields: %w", err)
	}

	return fields, nil
}

func (s *SimpleFieldService) UpdateField(ctx context.Context, name string, update FieldUpdate) (domain.FieldDefinition, error) {
	field, err := s.repository.GetByName(ctx, name)
	if errors.Is(err, ErrFieldNotFound) {
		return domain.FieldDefinition{}, ErrFieldNotFound
	}
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("getting field: %w", err)
	}

	if update.HelpText != nil {
		field.HelpText = *update.HelpText
	}
	if update.Placeholder != nil {
		field.Placeholder = *update.Placeholder
	}
	if update.InputKind != nil {
		if !update.InputKind.IsValid() {
			return domain.FieldDefinition{}, domain.ErrInvalidInputKind
		}
		field.InputKind = *update.InputKind
	}
	if update.FormWidth != nil {
		field.FormWidth = *update.FormWidth
	}
	if update.DisplayOrder != nil {
		field.DisplayOrder = *update.DisplayOrder
	}

	renamed := false
	if update.Label != nil && *update.Label != field.Label {
		newName := domain.NormalizeFieldName(*update.Label)
		if newName != field.Name {
			if field.IsBuiltin {
				slog.Warn("rename rejected for builtin field", slog.String("name", field.Name))
				return domain.FieldDefinition{}, ErrBuiltinFieldProtected
			}
			if _, err := s.repository.GetByName(ctx, newName); err == nil {
				return domain.FieldDefinition{}, ErrFieldDuplicated
			} else if !errors.Is(err, ErrFieldNotFound) {
				return domain.FieldDefinition{}, fmt.Errorf("checking new field name: %w", err)
			}
			renamed = true
		}
		field.Rename(*update.Label)
	}
	field.UpdatedAt = time.Now()

	if renamed {
		if err := s.repository.Rename(ctx, field, name); err != nil {
			slog.Error("renaming field",
				slog.String("old_name", name),
				slog.String("new_name", field.Name),
				slog.String("error", err.Error()))
			return domain.FieldDefinition{}, fmt.Errorf("%w: %w", ErrAtomicRewriteFailed, err)
		}

		s.notify(ctx, EventFieldRenamed, FieldRenamedEvent{OldName: name, Field: field})
		slog.Info("field renamed",
			slog.String("old_name", name),
			slog.String("new_name", field.Name))
		return field, nil
	}

	if err := s.repository.Update(ctx, field); err != nil {
		slog.Error("updating field", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, fmt.Errorf("updating field: %w", err)
	}

	s.notify(ctx, EventFieldUpdated, field)

	return field, nil
}

func (s *SimpleFieldService) DeleteField(ctx context.Context, name string) error {
	field, err := s.repository.GetByName(ctx, name)
	if errors.Is(err, ErrFieldNotFound) {
		return ErrFieldNotFound
	}
	if err != nil {
		return fmt.Errorf("getting field: %w", err)
	}

	if field.IsBuiltin {
		slog.Warn("delete rejected for builtin field", slog.String("name", field.Name))
		return ErrBuiltinFieldProtected
	}

	if err := s.repository.DeleteCascade(ctx, field); err != nil {
		slog.Error("deleting field", slog.String("name", name), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrAtomicRewriteFailed, err)
	}

	s.notify(ctx, EventFieldDeleted, field)
	slog.Info("field deleted", slog.String("name", name))

	return nil
}

func (s *SimpleFieldService) notify(ctx context.Context, event string, value any) {
	err := s.broker.Publish(ctx, SchemaEventsTopic, async.BrokerMessage{Event: event, Value: value})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing schema event", slog.String("event", event), slog.String("error", err.Error()))
	}
}
