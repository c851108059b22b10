package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cellar-server/internal/catalog/domain"
)

func NewSchemaResolver(
	fields FieldRepository,
	requirements RequirementRepository,
	categories CategoryRepository,
) *SimpleSchemaResolver {
	return &SimpleSchemaResolver{
		fields:       fields,
		requirements: requirements,
		categories:   categories,
	}
}

var _ SchemaResolver = &SimpleSchemaResolver{}

type SimpleSchemaResolver struct {
	fields       FieldRepository
	requirements RequirementRepository
	categories   CategoryRepository
}

// Resolve computes the effective schema at the given scope. Every registered
// field starts disabled and optional, then each level of the scope chain is
// applied in order. A rule at a narrower level replaces the wider one for
// that field outright, so a category can fully undo a global requirement.
func (s *SimpleSchemaResolver) Resolve(ctx context.Context, scope domain.Scope) (domain.ResolvedSchema, error) {
	chain, err := s.scopeChain(ctx, scope)
	if err != nil {
		return nil, err
	}

	fields, err := s.fields.FindAll(ctx)
	if err != nil {
		slog.Error("getting fields for resolution", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting fields: %w", err)
	}

	schema := make(domain.ResolvedSchema, len(fields))
	for _, field := range fields {
		schema[field.Name] = domain.ResolvedField{}
	}

	for _, level := range chain {
		rules, err := s.requirements.FindByScope(ctx, level)
		if err != nil {
			slog.Error("getting rules for resolution",
				slog.String("scope_kind", string(level.Kind)),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("getting rules: %w", err)
		}

		for _, rule := range rules {
			if _, known := schema[rule.FieldName]; !known {
				continue
			}
			schema[rule.FieldName] = domain.ResolvedField{
				Enabled:  rule.Enabled,
				Required: rule.Required,
			}
		}
	}

	return schema, nil
}

// ResolveAll computes the effective schema of every scope in one pass. The
// category level inherits the global result and each subcategory inherits
// its category's, so the whole snapshot costs three reads regardless of
// taxonomy size.
func (s *SimpleSchemaResolver) ResolveAll(ctx context.Context) (domain.SchemaSnapshot, error) {
	fields, err := s.fields.FindAll(ctx)
	if err != nil {
		slog.Error("getting fields for resolution", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting fields: %w", err)
	}

	rules, err := s.requirements.FindAll(ctx)
	if err != nil {
		slog.Error("getting rules for resolution", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting rules: %w", err)
	}

	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		slog.Error("getting categories for resolution", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting categories: %w", err)
	}

	rulesByScope := make(map[domain.Scope][]domain.RequirementRule)
	for _, rule := range rules {
		rulesByScope[rule.Scope] = append(rulesByScope[rule.Scope], rule)
	}

	baseline := make(domain.ResolvedSchema, len(fields))
	for _, field := range fields {
		baseline[field.Name] = domain.ResolvedField{}
	}

	apply := func(parent domain.ResolvedSchema, scope domain.Scope) domain.ResolvedSchema {
		schema := make(domain.ResolvedSchema, len(parent))
		for name, state := range parent {
			schema[name] = state
		}
		for _, rule := range rulesByScope[scope] {
			if _, known := schema[rule.FieldName]; !known {
				continue
			}
			schema[rule.FieldName] = domain.ResolvedField{
				Enabled:  rule.Enabled,
				Required: rule.Required,
			}
		}
		return schema
	}

	snapshot := make(domain.SchemaSnapshot, 1+len(categories))
	global := apply(baseline, domain.GlobalScope())
	snapshot[domain.GlobalScope()] = global

	for _, category := range categories {
		categoryScope := domain.CategoryScope(category.ID)
		categorySchema := apply(global, categoryScope)
		snapshot[categoryScope] = categorySchema

		for _, subcategory := range category.Subcategories {
			subcategoryScope := domain.SubcategoryScope(subcategory.ID)
			snapshot[subcategoryScope] = apply(categorySchema, subcategoryScope)
		}
	}

	return snapshot, nil
}

// scopeChain returns the scopes to apply from widest to narrowest.
func (s *SimpleSchemaResolver) scopeChain(ctx context.Context, scope domain.Scope) ([]domain.Scope, error) {
	switch scope.Kind {
	case domain.ScopeKindGlobal:
		return []domain.Scope{domain.GlobalScope()}, nil
	case domain.ScopeKindCategory:
		if _, err := s.categories.GetByID(ctx, scope.ID); err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return nil, ErrScopeNotFound
			}
			return nil, fmt.Errorf("getting category: %w", err)
		}
		return []domain.Scope{domain.GlobalScope(), scope}, nil
	case domain.ScopeKindSubcategory:
		subcategory, err := s.categories.GetSubcategoryByID(ctx, scope.ID)
		if errors.Is(err, ErrSubcategoryNotFound) {
			return nil, ErrScopeNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("getting subcategory: %w", err)
		}
		return []domain.Scope{
			domain.GlobalScope(),
			domain.CategoryScope(subcategory.CategoryID),
			scope,
		}, nil
	default:
		return nil, ErrScopeNotFound
	}
}
