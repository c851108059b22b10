package internal

import (
	"time"

	"cellar-server/internal/catalog/domain"
)

// Request models
type FieldCreateRequest struct {
	Label       string `json:"label" validate:"required,min=1,max=100"`
	HelpText    string `json:"help_text" validate:"max=500"`
	Placeholder string `json:"placeholder" validate:"max=200"`
	InputKind   string `json:"input_kind" validate:"omitempty,oneof=text number textarea"`
	FormWidth   int    `json:"form_width" validate:"omitempty,min=1,max=12"`
	ScopeKind   string `json:"scope_kind" validate:"omitempty,oneof=global category subcategory"`
	ScopeID     string `json:"scope_id" validate:"omitempty,uuid"`
	Enabled     bool   `json:"enabled"`
	Required    bool   `json:"required"`
}

type FieldUpdateRequest struct {
	Label        *string `json:"label,omitempty" validate:"omitempty,min=1,max=100"`
	HelpText     *string `json:"help_text,omitempty" validate:"omitempty,max=500"`
	Placeholder  *string `json:"placeholder,omitempty" validate:"omitempty,max=200"`
	InputKind    *string `json:"input_kind,omitempty" validate:"omitempty,oneof=text number textarea"`
	FormWidth    *int    `json:"form_width,omitempty" validate:"omitempty,min=1,max=12"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

// Response models
type FieldResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Label        string    `json:"label"`
	HelpText     string    `json:"help_text"`
	Placeholder  string    `json:"placeholder"`
	InputKind    string    `json:"input_kind"`
	FormWidth    int       `json:"form_width"`
	IsBuiltin    bool      `json:"is_builtin"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Conversion functions
func ToFieldResponse(field domain.FieldDefinition) FieldResponse {
	return FieldResponse{
		ID:           field.ID.String(),
		Name:         field.Name,
		Label:        field.Label,
		HelpText:     field.HelpText,
		Placeholder:  field.Placeholder,
		InputKind:    string(field.InputKind),
		FormWidth:    field.FormWidth,
		IsBuiltin:    field.IsBuiltin,
		DisplayOrder: field.DisplayOrder,
		CreatedAt:    field.CreatedAt,
		UpdatedAt:    field.UpdatedAt,
	}
}
