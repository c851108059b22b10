package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"cellar-server/internal/catalog/domain"
)

// MissingRequiredFieldError points at one required field with no value.
type MissingRequiredFieldError struct {
	FieldName string `json:"field_name"`
	Label     string `json:"label"`
}

// ValidationError aggregates every violation found in one attribute bag so
// the caller can report them all at once.
type ValidationError struct {
	Violations []MissingRequiredFieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Violations))
	for i, violation := range e.Violations {
		names[i] = violation.FieldName
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(names, ", "))
}

func NewBottleValidator(
	resolver SchemaResolver,
	fields FieldRepository,
) *SimpleBottleValidator {
	return &SimpleBottleValidator{
		resolver: resolver,
		fields:   fields,
	}
}

var _ BottleValidator = &SimpleBottleValidator{}

type SimpleBottleValidator struct {
	resolver SchemaResolver
	fields   FieldRepository
}

// ValidateAttributes checks the attribute bag against the effective schema
// at the given scope, the bottle's subcategory or its category when no
// subcategory is chosen. Every required field must carry a non-empty value.
// All violations are collected before returning.
func (v *SimpleBottleValidator) ValidateAttributes(ctx context.Context, scope domain.Scope, attributes domain.AttributeBag) error {
	schema, err := v.resolver.Resolve(ctx, scope)
	if err != nil {
		return err
	}

	fields, err := v.fields.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("getting fields: %w", err)
	}
	labels := make(map[string]string, len(fields))
	for _, field := range fields {
		labels[field.Name] = field.Label
	}

	var violations []MissingRequiredFieldError
	for fieldName, resolved := range schema {
		if !resolved.Required {
			continue
		}
		if attributes.HasValue(fieldName) {
			continue
		}
		violations = append(violations, MissingRequiredFieldError{
			FieldName: fieldName,
			Label:     labels[fieldName],
		})
	}

	if len(violations) == 0 {
		return nil
	}

	sort.Slice(violations, func(i, j int) bool {
		return violations[i].FieldName < violations[j].FieldName
	})

	slog.Debug("attribute validation failed",
		slog.String("scope_kind", string(scope.Kind)),
		slog.String("scope_id", scope.ID.String()),
		slog.Int("violations", len(violations)))

	return &ValidationError{Violations: violations}
}
