package internal

import (
	"time"

	"cellar-server/internal/catalog/domain"
)

// RequirementRule keeps one row per (field, scope) pair. Global rules store
// an empty scope_id so the composite unique index holds for them too.
type RequirementRule struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	FieldName  string    `json:"field_name" gorm:"uniqueIndex:idx_requirement_scope;not null"`
	ScopeKind  string    `json:"scope_kind" gorm:"uniqueIndex:idx_requirement_scope;not null"`
	ScopeID    string    `json:"scope_id" gorm:"uniqueIndex:idx_requirement_scope;not null;default:''"`
	CategoryID string    `json:"category_id" gorm:"index"`
	Enabled    bool      `json:"enabled"`
	Required   bool      `json:"required"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (RequirementRule) TableName() string {
	return "field_requirements"
}

func (r RequirementRule) ToDomain() domain.RequirementRule {
	return domain.RequirementRule{
		ID:        domain.ID(r.ID),
		FieldName: r.FieldName,
		Scope: domain.Scope{
			Kind: domain.ScopeKind(r.ScopeKind),
			ID:   domain.ID(r.ScopeID),
		},
		CategoryID: domain.ID(r.CategoryID),
		Enabled:    r.Enabled,
		Required:   r.Required,
		UpdatedAt:  r.UpdatedAt,
	}
}

func FromRequirementRule(value domain.RequirementRule) RequirementRule {
	return RequirementRule{
		ID:         value.ID.String(),
		FieldName:  value.FieldName,
		ScopeKind:  string(value.Scope.Kind),
		ScopeID:    value.Scope.ID.String(),
		CategoryID: value.CategoryID.String(),
		Enabled:    value.Enabled,
		Required:   value.Required,
		UpdatedAt:  value.UpdatedAt,
	}
}
