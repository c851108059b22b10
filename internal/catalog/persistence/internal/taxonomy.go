package internal

import (
	"time"

	"cellar-server/internal/catalog/domain"
)

type Category struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"uniqueIndex;not null"`
	Description   string        `json:"description"`
	DisplayOrder  int           `json:"display_order"`
	Subcategories []Subcategory `json:"subcategories" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c Category) ToDomain() domain.Category {
	subcategories := make([]domain.Subcategory, len(c.Subcategories))
	for i, subcategory := range c.Subcategories {
		subcategories[i] = subcategory.ToDomain()
	}

	return domain.Category{
		ID:            domain.ID(c.ID),
		Name:          c.Name,
		Description:   c.Description,
		DisplayOrder:  c.DisplayOrder,
		Subcategories: subcategories,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromCategory(value domain.Category) Category {
	return Category{
		ID:           value.ID.String(),
		Name:         value.Name,
		Description:  value.Description,
		DisplayOrder: value.DisplayOrder,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}

type Subcategory struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	CategoryID     string    `json:"category_id" gorm:"uniqueIndex:idx_subcategory_name;not null"`
	Name           string    `json:"name" gorm:"uniqueIndex:idx_subcategory_name;not null"`
	Description    string    `json:"description"`
	DisplayOrder   int       `json:"display_order"`
	BadgeBgColor   string    `json:"badge_bg_color"`
	BadgeTextColor string    `json:"badge_text_color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}

func (s Subcategory) ToDomain() domain.Subcategory {
	return domain.Subcategory{
		ID:             domain.ID(s.ID),
		CategoryID:     domain.ID(s.CategoryID),
		Name:           s.Name,
		Description:    s.Description,
		DisplayOrder:   s.DisplayOrder,
		BadgeBgColor:   s.BadgeBgColor,
		BadgeTextColor: s.BadgeTextColor,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromSubcategory(value domain.Subcategory) Subcategory {
	return Subcategory{
		ID:             value.ID.String(),
		CategoryID:     value.CategoryID.String(),
		Name:           value.Name,
		Description:    value.Description,
		DisplayOrder:   value.DisplayOrder,
		BadgeBgColor:   value.BadgeBgColor,
		BadgeTextColor: value.BadgeTextColor,
		CreatedAt:      value.CreatedAt,
		UpdatedAt:      value.UpdatedAt,
	}
}
