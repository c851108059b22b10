package persistence

import (
	"context"
	"errors"
	"fmt"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/persistence/internal"
	"cellar-server/internal/catalog/usecases"
	"cellar-server/internal/infra/sql"
	"cellar-server/internal/infra/utils"
)

func NewRequirementRepository(orm sql.ORM) (*SimpleRequirementRepository, error) {
	err := orm.AutoMigrate(&internal.RequirementRule{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRequirementRepository{
		orm: orm,
	}, nil
}

var _ usecases.RequirementRepository = (*SimpleRequirementRepository)(nil)

type SimpleRequirementRepository struct {
	orm sql.ORM
}

func (r *SimpleRequirementRepository) Upsert(ctx context.Context, rule domain.RequirementRule) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var existing internal.RequirementRule
		err := tx.
			Where("field_name = ? AND scope_kind = ? AND scope_id = ?",
				rule.FieldName, string(rule.Scope.Kind), rule.Scope.ID.String()).
			First(&existing).
			Error()

		if errors.Is(err, sql.ErrRecordNotFound) {
			entity := internal.FromRequirementRule(rule)
			if entity.ID == "" {
				entity.ID = utils.GenerateUUID()
			}
			if err := tx.Create(&entity).Error(); err != nil {
				return fmt.Errorf("database insert: %w", err)
			}
			return nil
		}

		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		existing.CategoryID = rule.CategoryID.String()
		existing.Enabled = rule.Enabled
		existing.Required = rule.Required
		existing.UpdatedAt = rule.UpdatedAt
		if err := tx.Save(&existing).Error(); err != nil {
			return fmt.Errorf("database update: %w", err)
		}

		return nil
	})
}

func (r *SimpleRequirementRepository) FindByScope(ctx context.Context, scope domain.Scope) ([]domain.RequirementRule, error) {
	var entities []internal.RequirementRule
	err := r.orm.
		WithContext(ctx).
		Where("scope_kind = ? AND scope_id = ?", string(scope.Kind), scope.ID.String()).
		Order("field_name asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.RequirementRule, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleRequirementRepository) FindAll(ctx context.Context) ([]domain.RequirementRule, error) {
	var entities []internal.RequirementRule
	err := r.orm.
		WithContext(ctx).
		Order("scope_kind asc, field_name asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.RequirementRule, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
