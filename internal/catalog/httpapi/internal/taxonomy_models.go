package internal

import (
	"time"

	"cellar-server/internal/catalog/domain"
)

// Request models
type CategoryCreateRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Description  string `json:"description" validate:"max=500"`
	DisplayOrder int    `json:"display_order"`
}

type SubcategoryCreateRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Description    string `json:"description" validate:"max=500"`
	DisplayOrder   int    `json:"display_order"`
	BadgeBgColor   string `json:"badge_bg_color" validate:"omitempty,hexcolor"`
	BadgeTextColor string `json:"badge_text_color" validate:"omitempty,hexcolor"`
}

// Response models
type SubcategoryResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"category_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DisplayOrder   int       `json:"display_order"`
	BadgeBgColor   string    `json:"badge_bg_color"`
	BadgeTextColor string    `json:"badge_text_color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	DisplayOrder  int                   `json:"display_order"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// Conversion functions
func ToSubcategoryResponse(subcategory domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:             subcategory.ID.String(),
		CategoryID:     subcategory.CategoryID.String(),
		Name:           subcategory.Name,
		Description:    subcategory.Description,
		DisplayOrder:   subcategory.DisplayOrder,
		BadgeBgColor:   subcategory.BadgeBgColor,
		BadgeTextColor: subcategory.BadgeTextColor,
		CreatedAt:      subcategory.CreatedAt,
		UpdatedAt:      subcategory.UpdatedAt,
	}
}

func ToCategoryResponse(category domain.Category) CategoryResponse {
	subcategories := make([]SubcategoryResponse, len(category.Subcategories))
	for i, subcategory := range category.Subcategories {
		subcategories[i] = ToSubcategoryResponse(subcategory)
	}

	return CategoryResponse{
		ID:            category.ID.String(),
		Name:          category.Name,
		Description:   category.Description,
		DisplayOrder:  category.DisplayOrder,
		Subcategories: subcategories,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}
