package internal

import (
	"time"

	"cellar-server/internal/catalog/domain"
)

// Request models
type BottleCreateRequest struct {
	Name          string         `json:"name" validate:"required,min=1,max=200"`
	SubcategoryID string         `json:"subcategory_id" validate:"required,uuid"`
	Quantity      int            `json:"quantity" validate:"omitempty,min=0"`
	Attributes    map[string]any `json:"attributes"`
}

type BottleUpdateRequest struct {
	Name          string         `json:"name" validate:"required,min=1,max=200"`
	SubcategoryID string         `json:"subcategory_id,omitempty" validate:"omitempty,uuid"`
	Quantity      int            `json:"quantity" validate:"omitempty,min=0"`
	Attributes    map[string]any `json:"attributes"`
}

// Response models
type BottleResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	SubcategoryID string         `json:"subcategory_id"`
	Quantity      int            `json:"quantity"`
	Attributes    map[string]any `json:"attributes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Conversion functions
func ToBottleResponse(bottle domain.Bottle) BottleResponse {
	return BottleResponse{
		ID:            bottle.ID.String(),
		Name:          bottle.Name,
		SubcategoryID: bottle.SubcategoryID.String(),
		Quantity:      bottle.Quantity,
		Attributes:    bottle.Attributes,
		CreatedAt:     bottle.CreatedAt,
		UpdatedAt:     bottle.UpdatedAt,
	}
}
