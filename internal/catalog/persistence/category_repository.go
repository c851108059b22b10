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

func NewCategoryRepository(orm sql.ORM) (*SimpleCategoryRepository, error) {
	err := orm.AutoMigrate(&internal.Category{}, &internal.Subcategory{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCategoryRepository{
		orm: orm,
	}, nil
}

var _ usecases.CategoryRepository = (*SimpleCategoryRepository)(nil)

type SimpleCategoryRepository struct {
	orm sql.ORM
}

func (r *SimpleCategoryRepository) Create(ctx context.Context, category domain.Category) error {
	entity := internal.FromCategory(category)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()

	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrCategoryDuplicated
	}

	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) GetByID(ctx context.Context, id domain.ID) (domain.Category, error) {
	var entity internal.Category
	err := r.orm.
		WithContext(ctx).
		Preload("Subcategories").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Category{}, usecases.ErrCategoryNotFound
	}

	if err != nil {
		return domain.Category{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	var entities []internal.Category
	err := r.orm.
		WithContext(ctx).
		Preload("Subcategories").
		Order("display_order asc, name asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Category, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleCategoryRepository) DeleteCascade(ctx context.Context, category domain.Category) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			Where("category_id = ?", category.ID.String()).
			Delete(&internal.RequirementRule{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting scoped rules: %w", err)
		}

		err = tx.
			Where("scope_kind = ? AND scope_id = ?", string(domain.ScopeKindCategory), category.ID.String()).
			Delete(&internal.RequirementRule{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting category rules: %w", err)
		}

		err = tx.
			Where("category_id = ?", category.ID.String()).
			Delete(&internal.Subcategory{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting subcategories: %w", err)
		}

		err = tx.
			Where("id = ?", category.ID.String()).
			Delete(&internal.Category{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting category: %w", err)
		}

		return nil
	})
}

func (r *SimpleCategoryRepository) CreateSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	entity := internal.FromSubcategory(subcategory)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) GetSubcategoryByID(ctx context.Context, id domain.ID) (domain.Subcategory, error) {
	var entity internal.Subcategory
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Subcategory{}, usecases.ErrSubcategoryNotFound
	}

	if err != nil {
		return domain.Subcategory{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCategoryRepository) DeleteSubcategoryCascade(ctx context.Context, subcategory domain.Subcategory) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			Where("scope_kind = ? AND scope_id = ?", string(domain.ScopeKindSubcategory), subcategory.ID.String()).
			Delete(&internal.RequirementRule{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting subcategory rules: %w", err)
		}

		err = tx.
			Where("id = ?", subcategory.ID.String()).
			Delete(&internal.Subcategory{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting subcategory: %w", err)
		}

		return nil
	})
}
