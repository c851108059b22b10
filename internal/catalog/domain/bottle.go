package domain

import (
	"errors"
	"strings"
	"time"

	"cellar-server/internal/infra/utils"
)

// AttributeBag holds the dynamic field values of a bottle, keyed by
// normalized field name. Values are free-form, the field registry only
// controls which keys exist and which must be filled.
type AttributeBag map[string]any

// HasValue reports whether the bag carries a non-empty value for the field.
// A missing key, a nil value and a blank string all count as empty.
func (b AttributeBag) HasValue(fieldName string) bool {
	value, ok := b[fieldName]
	if !ok || value == nil {
		return false
	}
	if str, isString := value.(string); isString {
		return strings.TrimSpace(str) != ""
	}
	return true
}

// Rename moves the value stored under oldName to newName. The value wins
// over any value already present under newName.
func (b AttributeBag) Rename(oldName, newName string) bool {
	value, ok := b[oldName]
	if !ok {
		return false
	}
	delete(b, oldName)
	b[newName] = value
	return true
}

// Remove drops the value stored under fieldName.
func (b AttributeBag) Remove(fieldName string) bool {
	if _, ok := b[fieldName]; !ok {
		return false
	}
	delete(b, fieldName)
	return true
}

func (b AttributeBag) Clone() AttributeBag {
	if b == nil {
		return nil
	}
	result := make(AttributeBag, len(b))
	for key, value := range b {
		result[key] = value
	}
	return result
}

// Bottle is a single catalogued bottle with its dynamic attributes.
type Bottle struct {
	ID            ID
	Name          string
	SubcategoryID ID
	Quantity      int
	Attributes    AttributeBag
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var ErrInvalidQuantity = errors.New("quantity must not be negative")

func NewBottleBuilder() *bottleBuilder {
	return &bottleBuilder{}
}

type bottleBuilder struct {
	actions []func(b *Bottle) error
}

func (b *bottleBuilder) WithName(value string) *bottleBuilder {
	b.actions = append(b.actions, func(bottle *Bottle) error {
		if strings.TrimSpace(value) == "" {
			return ErrEmptyName
		}
		bottle.Name = value
		return nil
	})
	return b
}

func (b *bottleBuilder) WithSubcategoryID(value ID) *bottleBuilder {
	b.actions = append(b.actions, func(bottle *Bottle) error {
		bottle.SubcategoryID = value
		return nil
	})
	return b
}

func (b *bottleBuilder) WithQuantity(value int) *bottleBuilder {
	b.actions = append(b.actions, func(bottle *Bottle) error {
		if value < 0 {
			return ErrInvalidQuantity
		}
		bottle.Quantity = value
		return nil
	})
	return b
}

func (b *bottleBuilder) WithAttributes(value AttributeBag) *bottleBuilder {
	b.actions = append(b.actions, func(bottle *Bottle) error {
		bottle.Attributes = value.Clone()
		return nil
	})
	return b
}

func (b *bottleBuilder) Build() (Bottle, error) {
	now := time.Now()
	result := Bottle{
		ID:         ID(utils.GenerateUUID()),
		Quantity:   1,
		Attributes: AttributeBag{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Bottle{}, err
		}
	}

	if result.Name == "" {
		return Bottle{}, ErrEmptyName
	}

	return result, nil
}
