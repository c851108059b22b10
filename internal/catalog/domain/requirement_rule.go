package domain

import "time"

// RequirementRule states whether a field is enabled and/or required at one
// scope. A rule at a narrower scope replaces the wider one outright, it does
// not merge with it.
type RequirementRule struct {
	ID        ID
	FieldName string
	Scope     Scope
	// CategoryID is the owning category when Scope targets a subcategory.
	// It lets category deletion sweep subcategory rules in one pass.
	CategoryID ID
	Enabled    bool
	Required   bool
	UpdatedAt  time.Time
}

// Normalize enforces the invariant that a required field is always enabled.
func (r *RequirementRule) Normalize() {
	if r.Required {
		r.Enabled = true
	}
}

// ResolvedField is the effective state of one field after walking the scope
// chain for a given subcategory.
type ResolvedField struct {
	Enabled  bool
	Required bool
}

// ResolvedSchema maps field names to their effective state at one scope.
type ResolvedSchema map[string]ResolvedField

// SchemaSnapshot holds the resolved schema of every scope in the catalog,
// keyed by scope. It is derived on demand and never persisted.
type SchemaSnapshot map[Scope]ResolvedSchema
