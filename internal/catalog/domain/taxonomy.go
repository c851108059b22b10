package domain

import (
	"errors"
	"strings"
	"time"

	"cellar-server/internal/infra/utils"
)

const (
	defaultBadgeBgColor   = "#6366f1"
	defaultBadgeTextColor = "#ffffff"
)

// Category is a top level grouping of bottles, e.g. wines or spirits.
type Category struct {
	ID            ID
	Name          string
	Description   string
	DisplayOrder  int
	Subcategories []Subcategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Subcategory is a refinement of a category, e.g. champagne under wines.
type Subcategory struct {
	ID             ID
	CategoryID     ID
	Name           string
	Description    string
	DisplayOrder   int
	BadgeBgColor   string
	BadgeTextColor string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

var ErrEmptyName = errors.New("name must not be empty")

func NewCategoryBuilder() *categoryBuilder {
	return &categoryBuilder{}
}

type categoryBuilder struct {
	actions []func(c *Category) error
}

func (b *categoryBuilder) WithName(value string) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		if strings.TrimSpace(value) == "" {
			return ErrEmptyName
		}
		c.Name = value
		return nil
	})
	return b
}

func (b *categoryBuilder) WithDescription(value string) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		c.Description = value
		return nil
	})
	return b
}

func (b *categoryBuilder) WithDisplayOrder(value int) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		c.DisplayOrder = value
		return nil
	})
	return b
}

func (b *categoryBuilder) Build() (Category, error) {
	now := time.Now()
	result := Category{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Category{}, err
		}
	}

	if result.Name == "" {
		return Category{}, ErrEmptyName
	}

	return result, nil
}

func NewSubcategoryBuilder() *subcategoryBuilder {
	return &subcategoryBuilder{}
}

type subcategoryBuilder struct {
	actions []func(s *Subcategory) error
}

func (b *subcategoryBuilder) WithCategoryID(value ID) *subcategoryBuilder {
	b.actions = append(b.actions, func(s *Subcategory) error {
		s.CategoryID = value
		return nil
	})
	return b
}

func (b *subcategoryBuilder) WithName(value string) *subcategoryBuilder {
	b.actions = append(b.actions, func(s *Subcategory) error {
		if strings.TrimSpace(value) == "" {
			return ErrEmptyName
		}
		s.Name = value
		return nil
	})
	return b
}

func (b *subcategoryBuilder) WithDescription(value string) *subcategoryBuilder {
	b.actions = append(b.actions, func(s *Subcategory) error {
		s.Description = value
		return nil
	})
	return b
}

func (b *subcategoryBuilder) WithDisplayOrder(value int) *subcategoryBuilder {
	b.actions = append(b.actions, func(s *Subcategory) error {
		s.DisplayOrder = value
		return nil
	})
	return b
}

func (b *subcategoryBuilder) WithBadgeColors(bg, text string) *subcategoryBuilder {
	b.actions = append(b.actions, func(s *Subcategory) error {
		if bg != "" {
			s.BadgeBgColor = bg
		}
		if text != "" {
			s.BadgeTextColor = text
		}
		return nil
	})
	return b
}

func (b *subcategoryBuilder) Build() (Subcategory, error) {
	now := time.Now()
	result := Subcategory{
		ID:             ID(utils.GenerateUUID()),
		BadgeBgColor:   defaultBadgeBgColor,
		BadgeTextColor: defaultBadgeTextColor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Subcategory{}, err
		}
	}

	if result.Name == "" {
		return Subcategory{}, ErrEmptyName
	}

	return result, nil
}
