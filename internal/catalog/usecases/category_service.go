package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cellar-server/internal/catalog/domain"
)

func NewCategoryService(repository CategoryRepository) *SimpleCategoryService {
	return &SimpleCategoryService{
		repository: repository,
	}
}

var _ CategoryService = &SimpleCategoryService{}

type SimpleCategoryService struct {
	repository CategoryRepository
}

func (s *SimpleCategoryService) CreateCategory(ctx context.Context, category domain.Category) error {
	err := s.repository.Create(ctx, category)
	if errors.Is(err, ErrCategoryDuplicated) {
		slog.Warn("category duplicated", slog.String("name", category.Name))
		return ErrCategoryDuplicated
	}
	if err != nil {
		slog.Error("creating category", slog.String("error", err.Error()))
		return fmt.Errorf("creating category: %w", err)
	}

	slog.Info("category created", slog.String("name", category.Name))

	return nil
}

func (s *SimpleCategoryService) GetCategory(ctx context.Context, id domain.ID) (domain.Category, error) {
	category, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrCategoryNotFound) {
		return domain.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		slog.Error("getting category", slog.String("error", err.Error()))
		return domain.Category{}, fmt.Errorf("getting category: %w", err)
	}

	return category, nil
}

func (s *SimpleCategoryService) AllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("getting all categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting all categories: %w", err)
	}

	return categories, nil
}

func (s *SimpleCategoryService) DeleteCategory(ctx context.Context, id domain.ID) error {
	category, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("getting category: %w", err)
	}

	if err := s.repository.DeleteCascade(ctx, category); err != nil {
		slog.Error("deleting category", slog.String("id", id.String()), slog.String("error", err.Error()))
		return fmt.Errorf("deleting category: %w", err)
	}

	slog.Info("category deleted", slog.String("name", category.Name))

	return nil
}

func (s *SimpleCategoryService) CreateSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	if _, err := s.repository.GetByID(ctx, subcategory.CategoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting parent category: %w", err)
	}

	if err := s.repository.CreateSubcategory(ctx, subcategory); err != nil {
		slog.Error("creating subcategory", slog.String("error", err.Error()))
		return fmt.Errorf("creating subcategory: %w", err)
	}

	slog.Info("subcategory created",
		slog.String("name", subcategory.Name),
		slog.String("category_id", subcategory.CategoryID.String()))

	return nil
}

func (s *SimpleCategoryService) GetSubcategory(ctx context.Context, id domain.ID) (domain.Subcategory, error) {
	subcategory, err := s.repository.GetSubcategoryByID(ctx, id)
	if errors.Is(err, ErrSubcategoryNotFound) {
		return domain.Subcategory{}, ErrSubcategoryNotFound
	}
	if err != nil {
		slog.Error("getting subcategory", slog.String("error", err.Error()))
		return domain.Subcategory{}, fmt.Errorf("getting subcategory: %w", err)
	}

	return subcategory, nil
}

func (s *SimpleCategoryService) DeleteSubcategory(ctx context.Context, id domain.ID) error {
	subcategory, err := s.repository.GetSubcategoryByID(ctx, id)
	if errors.Is(err, ErrSubcategoryNotFound) {
		return ErrSubcategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("getting subcategory: %w", err)
	}

	if err := s.repository.DeleteSubcategoryCascade(ctx, subcategory); err != nil {
		slog.Error("deleting subcategory", slog.String("id", id.String()), slog.String("error", err.Error()))
		return fmt.Errorf("deleting subcategory: %w", err)
	}

	slog.Info("subcategory deleted", slog.String("name", subcategory.Name))

	return nil
}
