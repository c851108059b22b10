package internal

import (
	"time"

	"cellar-server/internal/catalog/domain"
)

type FieldDefinition struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Label        string    `json:"label" gorm:"not null"`
	HelpText     string    `json:"help_text"`
	Placeholder  string    `json:"placeholder"`
	InputKind    string    `json:"input_kind" gorm:"default:text"`
	FormWidth    int       `json:"form_width" gorm:"default:12"`
	IsBuiltin    bool      `json:"is_builtin"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FieldDefinition) TableName() string {
	return "field_definitions"
}

func (f FieldDefinition) ToDomain() domain.FieldDefinition {
	return domain.FieldDefinition{
		ID:           domain.ID(f.ID),
		Name:         f.Name,
		Label:        f.Label,
		HelpText:     f.HelpText,
		Placeholder:  f.Placeholder,
		InputKind:    domain.InputKind(f.InputKind),
		FormWidth:    f.FormWidth,
		IsBuiltin:    f.IsBuiltin,
		DisplayOrder: f.DisplayOrder,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func FromFieldDefinition(value domain.FieldDefinition) FieldDefinition {
	return FieldDefinition{
		ID:           value.ID.String(),
		Name:         value.Name,
		Label:        value.Label,
		HelpText:     value.HelpText,
		Placeholder:  value.Placeholder,
		InputKind:    string(value.InputKind),
		FormWidth:    value.FormWidth,
		IsBuiltin:    value.IsBuiltin,
		DisplayOrder: value.DisplayOrder,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}
