package persistence

import (
	"context"
	"errors"
	"fmt"

	"cellar-server/internal/catalog/domain"
	"cellar-server/internal/catalog/persistence/internal"
	"cellar-server/internal/catalog/usecases"
	"cellar-server/internal/infra/sql"
)

func NewFieldRepository(orm sql.ORM) (*SimpleFieldRepository, error) {
	err := orm.AutoMigrate(&internal.FieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldRepository{
		orm: orm,
	}, nil
}

var _ usecases.FieldRepository = (*SimpleFieldRepository)(nil)

type SimpleFieldRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldRepository) Create(ctx context.Context, field domain.FieldDefinition) error {
	entity := internal.FromFieldDefinition(field)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()

	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrFieldDuplicated
	}

	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleFieldRepository) GetByName(ctx context.Context, name string) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("name = ?", name).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrFieldNotFound
	}

	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldRepository) FindAll(ctx context.Context) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Order("display_order asc, label asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldDefinition, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleFieldRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Order("display_order desc").
		Limit(1).
		Find(&entities).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	if len(entities) == 0 {
		return 0, nil
	}

	return entities[0].DisplayOrder, nil
}

func (r *SimpleFieldRepository) Update(ctx context.Context, field domain.FieldDefinition) error {
	entity := internal.FromFieldDefinition(field)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleFieldRepository) Rename(ctx context.Context, field domain.FieldDefinition, oldName string) error {
	entity := internal.FromFieldDefinition(field)

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Save(&entity).Error(); err != nil {
			return fmt.Errorf("updating field: %w", err)
		}

		var rules []internal.RequirementRule
		if err := tx.Where("field_name = ?", oldName).Find(&rules).Error(); err != nil {
			return fmt.Errorf("loading requirement rules: %w", err)
		}
		for _, rule := range rules {
			rule.FieldName = field.Name
			if err := tx.Save(&rule).Error(); err != nil {
				return fmt.Errorf("rewriting requirement rule: %w", err)
			}
		}

		return rewriteBottleBags(tx, func(bag domain.AttributeBag) bool {
			return bag.Rename(oldName, field.Name)
		})
	})
}

func (r *SimpleFieldRepository) DeleteCascade(ctx context.Context, field domain.FieldDefinition) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			Where("id = ?", field.ID.String()).
			Delete(&internal.FieldDefinition{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting field: %w", err)
		}

		err = tx.
			Where("field_name = ?", field.Name).
			Delete(&internal.RequirementRule{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting requirement rules: %w", err)
		}

		return rewriteBottleBags(tx, func(bag domain.AttributeBag) bool {
			return bag.Remove(field.Name)
		})
	})
}

// rewriteBottleBags applies the mutation to every bottle attribute bag and
// saves the bottles it actually changed. Bags are opaque JSON to the
// database, so the rewrite happens here rather than in a portable query.
func rewriteBottleBags(tx sql.ORM, mutate func(bag domain.AttributeBag) bool) error {
	var bottles []internal.Bottle
	if err := tx.Find(&bottles).Error(); err != nil {
		return fmt.Errorf("loading bottles: %w", err)
	}

	for _, bottle := range bottles {
		bag := domain.AttributeBag(bottle.Attributes)
		if !mutate(bag) {
			continue
		}
		bottle.Attributes = internal.AttributeBag(bag)
		if err := tx.Save(&bottle).Error(); err != nil {
			return fmt.Errorf("rewriting bottle attributes: %w", err)
		}
	}

	return nil
}
