package usecases

import (
	"context"
	"errors"

	"cellar-server/internal/catalog/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/catalog/usecases/repository_port_mock.go -package=usecases -mock_names=FieldRepository=MockFieldRepository,RequirementRepository=MockRequirementRepository,CategoryRepository=MockCategoryRepository,BottleRepository=MockBottleRepository

var (
	ErrFieldNotFound         = errors.New("field not found")
	ErrFieldDuplicated       = errors.New("field already exists")
	ErrBuiltinFieldProtected = errors.New("builtin field cannot be renamed or deleted")
	ErrScopeNotFound         = errors.New("requirement scope not found")
	ErrAtomicRewriteFailed   = errors.New("cascading field rewrite failed")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryDuplicated    = errors.New("category already exists")
	ErrSubcategoryNotFound   = errors.New("subcategory not found")
	ErrBottleNotFound        = errors.New("bottle not found")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type FieldRepository interface {
	Create(context.Context, domain.FieldDefinition) error
	GetByName(context.Context, string) (domain.FieldDefinition, error)
	FindAll(context.Context) ([]domain.FieldDefinition, error)
	MaxDisplayOrder(context.Context) (int, error)
	Update(context.Context, domain.FieldDefinition) error
	// Rename persists the already renamed field and rewrites every
	// requirement rule and bottle attribute bag that still carries
	// oldName, all inside one transaction.
	Rename(ctx context.Context, field domain.FieldDefinition, oldName string) error
	// DeleteCascade removes the field together with its requirement rules
	// and its values in bottle attribute bags, all inside one transaction.
	DeleteCascade(context.Context, domain.FieldDefinition) error
}

type RequirementRepository interface {
	Upsert(context.Context, domain.RequirementRule) error
	FindByScope(context.Context, domain.Scope) ([]domain.RequirementRule, error)
	FindAll(context.Context) ([]domain.RequirementRule, error)
}

type CategoryRepository interface {
	Create(context.Context, domain.Category) error
	GetByID(context.Context, domain.ID) (domain.Category, error)
	FindAll(context.Context) ([]domain.Category, error)
	// DeleteCascade removes the category, its subcategories and every
	// requirement rule scoped to any of them.
	DeleteCascade(context.Context, domain.Category) error
	CreateSubcategory(context.Context, domain.Subcategory) error
	GetSubcategoryByID(context.Context, domain.ID) (domain.Subcategory, error)
	// DeleteSubcategoryCascade removes the subcategory and every
	// requirement rule scoped to it.
	DeleteSubcategoryCascade(context.Context, domain.Subcategory) error
}

type BottleRepository interface {
	Create(context.Context, domain.Bottle) error
	GetByID(context.Context, domain.ID) (domain.Bottle, error)
	FindAll(context.Context, Pagination) ([]domain.Bottle, int, error)
	FindBySubcategory(context.Context, domain.ID) ([]domain.Bottle, error)
	Update(context.Context, domain.Bottle) error
	Delete(context.Context, domain.ID) error
}
