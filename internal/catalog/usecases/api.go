package usecases

import (
	"context"

	"cellar-server/internal/catalog/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/catalog/usecases/api.go -package=usecases

// FieldUpdate carries a partial update of a field definition. Nil members
// are left untouched. A new label that normalizes to a different name
// triggers a cascading rename.
type FieldUpdate struct {
	Label        *string
	HelpText     *string
	Placeholder  *string
	InputKind    *domain.InputKind
	FormWidth    *int
	DisplayOrder *int
}

type FieldService interface {
	CreateField(context.Context, domain.FieldDefinition, domain.Scope, domain.ResolvedField) (domain.FieldDefinition, error)
	GetField(context.Context, string) (domain.FieldDefinition, error)
	AllFields(context.Context) ([]domain.FieldDefinition, error)
	UpdateField(context.Context, string, FieldUpdate) (domain.FieldDefinition, error)
	DeleteField(context.Context, string) error
}

type RequirementService interface {
	SetRequirement(context.Context, domain.RequirementRule) (domain.RequirementRule, error)
	RequirementsByScope(context.Context, domain.Scope) ([]domain.RequirementRule, error)
	AllRequirements(context.Context) ([]domain.RequirementRule, error)
}

type SchemaResolver interface {
	Resolve(context.Context, domain.Scope) (domain.ResolvedSchema, error)
	ResolveAll(context.Context) (domain.SchemaSnapshot, error)
}

type BottleValidator interface {
	ValidateAttributes(context.Context, domain.Scope, domain.AttributeBag) error
}

type CategoryService interface {
	CreateCategory(context.Context, domain.Category) error
	GetCategory(context.Context, domain.ID) (domain.Category, error)
	AllCategories(context.Context) ([]domain.Category, error)
	DeleteCategory(context.Context, domain.ID) error
	CreateSubcategory(context.Context, domain.Subcategory) error
	GetSubcategory(context.Context, domain.ID) (domain.Subcategory, error)
	DeleteSubcategory(context.Context, domain.ID) error
}

type BottleService interface {
	CreateBottle(context.Context, domain.Bottle) error
	GetBottle(context.Context, domain.ID) (domain.Bottle, error)
	AllBottles(context.Context, Pagination) ([]domain.Bottle, int, error)
	BottlesBySubcategory(context.Context, domain.ID) ([]domain.Bottle, error)
	UpdateBottle(context.Context, domain.Bottle) error
	DeleteBottle(context.Context, domain.ID) error
}
