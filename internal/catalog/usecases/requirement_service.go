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

func NewRequirementService(
	repository RequirementRepository,
	fields FieldRepository,
	categories CategoryRepository,
	broker async.InternalBroker,
) *SimpleRequirementService {
	return &SimpleRequirementService{
		repository: repository,
		fields:     fields,
		categories: categories,
		broker:     broker,
	}
}

var _ RequirementService = &SimpleRequirementService{}

type SimpleRequirementService struct {
	repository RequirementRepository
	fields     FieldRepository
	categories CategoryRepository
	broker     async.InternalBroker
}

func (s *SimpleRequirementService) SetRequirement(ctx context.Context, rule domain.RequirementRule) (domain.RequirementRule, error) {
	if !rule.Scope.Kind.IsValid() {
		return domain.RequirementRule{}, ErrScopeNotFound
	}

	if _, err := s.fields.GetByName(ctx, rule.FieldName); err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			slog.Warn("requirement rejected for unknown field", slog.String("field_name", rule.FieldName))
			return domain.RequirementRule{}, ErrFieldNotFound
		}
		return domain.RequirementRule{}, fmt.Errorf("getting field: %w", err)
	}

	if err := s.resolveScopeOwnership(ctx, &rule); err != nil {
		return domain.RequirementRule{}, err
	}

	rule.Normalize()
	rule.UpdatedAt = time.Now()

	if err := s.repository.Upsert(ctx, rule); err != nil {
		slog.Error("upserting requirement",
			slog.String("field_name", rule.FieldName),
			slog.String("scope_kind", string(rule.Scope.Kind)),
			slog.String("error", err.Error()))
		return domain.RequirementRule{}, fmt.Errorf("upserting requirement: %w", err)
	}

	s.notify(ctx, rule)
	slog.Info("requirement updated",
		slog.String("field_name", rule.FieldName),
		slog.String("scope_kind", string(rule.Scope.Kind)),
		slog.String("scope_id", rule.Scope.ID.String()),
		slog.Bool("enabled", rule.Enabled),
		slog.Bool("required", rule.Required))

	return rule, nil
}

// resolveScopeOwnership checks that the scope target exists and records the
// owning category of subcategory scoped rules.
func (s *SimpleRequirementService) resolveScopeOwnership(ctx context.Context, rule *domain.RequirementRule) error {
	switch rule.Scope.Kind {
	case domain.ScopeKindGlobal:
		rule.CategoryID = ""
		return nil
	case domain.ScopeKindCategory:
		category, err := s.categories.GetByID(ctx, rule.Scope.ID)
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrScopeNotFound
		}
		if err != nil {
			return fmt.Errorf("getting category: %w", err)
		}
		rule.CategoryID = category.ID
		return nil
	case domain.ScopeKindSubcategory:
		subcategory, err := s.categories.GetSubcategoryByID(ctx, rule.Scope.ID)
		if errors.Is(err, ErrSubcategoryNotFound) {
			return ErrScopeNotFound
		}
		if err != nil {
			return fmt.Errorf("getting subcategory: %w", err)
		}
		rule.CategoryID = subcategory.CategoryID
		return nil
	default:
		return ErrScopeNotFound
	}
}

func (s *SimpleRequirementService) RequirementsByScope(ctx context.Context, scope domain.Scope) ([]domain.RequirementRule, error) {
	if !scope.Kind.IsValid() {
		return nil, ErrScopeNotFound
	}

	rules, err := s.repository.FindByScope(ctx, scope)
	if err != nil {
		slog.Error("getting requirements by scope", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting requirements: %w", err)
	}

	return rules, nil
}

func (s *SimpleRequirementService) AllRequirements(ctx context.Context) ([]domain.RequirementRule, error) {
	rules, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("getting all requirements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting all requirements: %w", err)
	}

	return rules, nil
}

func (s *SimpleRequirementService) notify(ctx context.Context, rule domain.RequirementRule) {
	err := s.broker.Publish(ctx, SchemaEventsTopic, async.BrokerMessage{Event: EventRequirementUpdated, Value: rule})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing schema event", slog.String("event", EventRequirementUpdated), slog.String("error", err.Error()))
	}
}
