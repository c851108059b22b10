package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

// ScopeKind identifies the level at which a requirement rule applies.
type ScopeKind string

const (
	ScopeKindGlobal      ScopeKind = "global"
	ScopeKindCategory    ScopeKind = "category"
	ScopeKindSubcategory ScopeKind = "subcategory"
)

func (k ScopeKind) IsValid() bool {
	switch k {
	case ScopeKindGlobal, ScopeKindCategory, ScopeKindSubcategory:
		return true
	default:
		return false
	}
}

// Scope is a concrete requirement scope: the whole system, one category or
// one subcategory.
type Scope struct {
	Kind ScopeKind
	ID   ID
}

func GlobalScope() Scope {
	return Scope{Kind: ScopeKindGlobal}
}

func CategoryScope(id ID) Scope {
	return Scope{Kind: ScopeKindCategory, ID: id}
}

func SubcategoryScope(id ID) Scope {
	return Scope{Kind: ScopeKindSubcategory, ID: id}
}

func (s Scope) IsGlobal() bool {
	return s.Kind == ScopeKindGlobal
}

// InputKind is the presentation hint of a field. The set is closed.
type InputKind string

const (
	InputKindText     InputKind = "text"
	InputKindNumber   InputKind = "number"
	InputKindTextarea InputKind = "textarea"
)

func (k InputKind) IsValid() bool {
	switch k {
	case InputKindText, InputKindNumber, InputKindTextarea:
		return true
	default:
		return false
	}
}
