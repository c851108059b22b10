package internal

import (
	"sort"
	"time"

	"cellar-server/internal/catalog/domain"
)

// Request models
type RequirementUpsertRequest struct {
	FieldName string `json:"field_name" validate:"required"`
	ScopeKind string `json:"scope_kind" validate:"required,oneof=global category subcategory"`
	ScopeID   string `json:"scope_id" validate:"omitempty,uuid"`
	Enabled   bool   `json:"enabled"`
	Required  bool   `json:"required"`
}

// Response models
type RequirementResponse struct {
	ID        string    `json:"id"`
	FieldName string    `json:"field_name"`
	ScopeKind string    `json:"scope_kind"`
	ScopeID   string    `json:"scope_id,omitempty"`
	Enabled   bool      `json:"enabled"`
	Required  bool      `json:"required"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResolvedFieldResponse struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	HelpText     string `json:"help_text"`
	Placeholder  string `json:"placeholder"`
	InputKind    string `json:"input_kind"`
	FormWidth    int    `json:"form_width"`
	DisplayOrder int    `json:"display_order"`
	Enabled      bool   `json:"enabled"`
	Required     bool   `json:"required"`
}

type ResolvedSchemaResponse struct {
	ScopeKind string                  `json:"scope_kind"`
	ScopeID   string                  `json:"scope_id,omitempty"`
	Fields    []ResolvedFieldResponse `json:"fields"`
}

// ValidationRequest targets the bottle's subcategory, or falls back to a
// bare category when no subcategory is chosen yet.
type ValidationRequest struct {
	SubcategoryID string         `json:"subcategory_id" validate:"omitempty,uuid"`
	CategoryID    string         `json:"category_id" validate:"omitempty,uuid"`
	Attributes    map[string]any `json:"attributes"`
}

type ValidationViolation struct {
	FieldName string `json:"field_name"`
	Label     string `json:"label"`
}

type ValidationResponse struct {
	Valid      bool                  `json:"valid"`
	Violations []ValidationViolation `json:"violations,omitempty"`
}

// Conversion functions
func ToRequirementResponse(rule domain.RequirementRule) RequirementResponse {
	return RequirementResponse{
		ID:        rule.ID.String(),
		FieldName: rule.FieldName,
		ScopeKind: string(rule.Scope.Kind),
		ScopeID:   rule.Scope.ID.String(),
		Enabled:   rule.Enabled,
		Required:  rule.Required,
		UpdatedAt: rule.UpdatedAt,
	}
}

// ToResolvedSchemaResponse merges field definitions with the resolved state
// at one scope, ordered the way the admin form renders them.
func ToResolvedSchemaResponse(scope domain.Scope, fields []domain.FieldDefinition, schema domain.ResolvedSchema) ResolvedSchemaResponse {
	resolved := make([]ResolvedFieldResponse, 0, len(fields))
	for _, field := range fields {
		state := schema[field.Name]
		resolved = append(resolved, ResolvedFieldResponse{
			Name:         field.Name,
			Label:        field.Label,
			HelpText:     field.HelpText,
			Placeholder:  field.Placeholder,
			InputKind:    string(field.InputKind),
			FormWidth:    field.FormWidth,
			DisplayOrder: field.DisplayOrder,
			Enabled:      state.Enabled,
			Required:     state.Required,
		})
	}

	return ResolvedSchemaResponse{
		ScopeKind: string(scope.Kind),
		ScopeID:   scope.ID.String(),
		Fields:    resolved,
	}
}

var scopeKindRank = map[domain.ScopeKind]int{
	domain.ScopeKindGlobal:      0,
	domain.ScopeKindCategory:    1,
	domain.ScopeKindSubcategory: 2,
}

// ToSchemaSnapshotResponse renders every scope's resolved schema, global
// first, then categories and subcategories in scope id order.
func ToSchemaSnapshotResponse(fields []domain.FieldDefinition, snapshot domain.SchemaSnapshot) []ResolvedSchemaResponse {
	scopes := make([]domain.Scope, 0, len(snapshot))
	for scope := range snapshot {
		scopes = append(scopes, scope)
	}
	sort.Slice(scopes, func(i, j int) bool {
		if scopes[i].Kind != scopes[j].Kind {
			return scopeKindRank[scopes[i].Kind] < scopeKindRank[scopes[j].Kind]
		}
		return scopes[i].ID < scopes[j].ID
	})

	responses := make([]ResolvedSchemaResponse, len(scopes))
	for i, scope := range scopes {
		responses[i] = ToResolvedSchemaResponse(scope, fields, snapshot[scope])
	}
	return responses
}
