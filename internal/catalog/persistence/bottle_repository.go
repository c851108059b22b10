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

func NewBottleRepository(orm sql.ORM) (*SimpleBottleRepository, error) {
	err := orm.AutoMigrate(&internal.Bottle{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleBottleRepository{
		orm: orm,
	}, nil
}

var _ usecases.BottleRepository = (*SimpleBottleRepository)(nil)

type SimpleBottleRepository struct {
	orm sql.ORM
}

func (r *SimpleBottleRepository) Create(ctx context.Context, bottle domain.Bottle) error {
	entity := internal.FromBottle(bottle)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleBottleRepository) GetByID(ctx context.Context, id domain.ID) (domain.Bottle, error) {
	var entity internal.Bottle
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Bottle{}, usecases.ErrBottleNotFound
	}

	if err != nil {
		return domain.Bottle{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleBottleRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Bottle, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Bottle{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	query := r.orm.WithContext(ctx).Order("name asc")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.Offset)
	}

	var entities []internal.Bottle
	if err := query.Find(&entities).Error(); err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Bottle, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleBottleRepository) FindBySubcategory(ctx context.Context, subcategoryID domain.ID) ([]domain.Bottle, error) {
	var entities []internal.Bottle
	err := r.orm.
		WithContext(ctx).
		Where("subcategory_id = ?", subcategoryID.String()).
		Order("name asc").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Bottle, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleBottleRepository) Update(ctx context.Context, bottle domain.Bottle) error {
	entity := internal.FromBottle(bottle)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleBottleRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Where("id = ?", id.String()).
		Delete(&internal.Bottle{}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}
