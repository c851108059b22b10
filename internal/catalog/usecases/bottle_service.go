package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cellar-server/internal/catalog/domain"
)

func NewBottleService(
	repository BottleRepository,
	categories CategoryRepository,
	validator BottleValidator,
) *SimpleBottleService {
	return &SimpleBottleService{
		repository: repository,
		categories: categories,
		validator:  validator,
	}
}

var _ BottleService = &SimpleBottleService{}

type SimpleBottleService struct {
	repository BottleRepository
	categories CategoryRepository
	validator  BottleValidator
}

func (s *SimpleBottleService) CreateBottle(ctx context.Context, bottle domain.Bottle) error {
	if _, err := s.categories.GetSubcategoryByID(ctx, bottle.SubcategoryID); err != nil {
		if errors.Is(err, ErrSubcategoryNotFound) {
			return ErrSubcategoryNotFound
		}
		return fmt.Errorf("getting subcategory: %w", err)
	}

	if err := s.validator.ValidateAttributes(ctx, domain.SubcategoryScope(bottle.SubcategoryID), bottle.Attributes); err != nil {
		return err
	}

	if err := s.repository.Create(ctx, bottle); err != nil {
		slog.Error("creating bottle", slog.String("error", err.Error()))
		return fmt.Errorf("creating bottle: %w", err)
	}

	slog.Info("bottle created",
		slog.String("name", bottle.Name),
		slog.String("subcategory_id", bottle.SubcategoryID.String()))

	return nil
}

func (s *SimpleBottleService) GetBottle(ctx context.Context, id domain.ID) (domain.Bottle, error) {
	bottle, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrBottleNotFound) {
		return domain.Bottle{}, ErrBottleNotFound
	}
	if err != nil {
		slog.Error("getting bottle", slog.String("error", err.Error()))
		return domain.Bottle{}, fmt.Errorf("getting bottle: %w", err)
	}

	return bottle, nil
}

func (s *SimpleBottleService) AllBottles(ctx context.Context, pagination Pagination) ([]domain.Bottle, int, error) {
	bottles, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("getting all bottles", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("getting all bottles: %w", err)
	}

	return bottles, total, nil
}

func (s *SimpleBottleService) BottlesBySubcategory(ctx context.Context, subcategoryID domain.ID) ([]domain.Bottle, error) {
	bottles, err := s.repository.FindBySubcategory(ctx, subcategoryID)
	if err != nil {
		slog.Error("getting bottles by subcategory",
			slog.String("subcategory_id", subcategoryID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting bottles: %w", err)
	}

	return bottles, nil
}

func (s *SimpleBottleService) UpdateBottle(ctx context.Context, bottle domain.Bottle) error {
	current, err := s.repository.GetByID(ctx, bottle.ID)
	if errors.Is(err, ErrBottleNotFound) {
		return ErrBottleNotFound
	}
	if err != nil {
		return fmt.Errorf("getting bottle: %w", err)
	}

	if bottle.SubcategoryID == "" {
		bottle.SubcategoryID = current.SubcategoryID
	}

	if err := s.validator.ValidateAttributes(ctx, domain.SubcategoryScope(bottle.SubcategoryID), bottle.Attributes); err != nil {
		return err
	}

	bottle.CreatedAt = current.CreatedAt
	bottle.UpdatedAt = time.Now()

	if err := s.repository.Update(ctx, bottle); err != nil {
		slog.Error("updating bottle", slog.String("error", err.Error()))
		return fmt.Errorf("updating bottle: %w", err)
	}

	return nil
}

func (s *SimpleBottleService) DeleteBottle(ctx context.Context, id domain.ID) error {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrBottleNotFound) {
			return ErrBottleNotFound
		}
		return fmt.Errorf("getting bottle: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting bottle", slog.String("error", err.Error()))
		return fmt.Errorf("deleting bottle: %w", err)
	}

	slog.Info("bottle deleted", slog.String("id", id.String()))

	return nil
}
