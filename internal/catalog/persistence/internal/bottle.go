package internal

import (
	"errors"
	"time"

	"database/sql/driver"
	"encoding/json"

	"cellar-server/internal/catalog/domain"
)

type Bottle struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	Name          string       `json:"name" gorm:"not null"`
	SubcategoryID string       `json:"subcategory_id" gorm:"index;not null"`
	Quantity      int          `json:"quantity"`
	Attributes    AttributeBag `json:"attributes" gorm:"type:json"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Bottle) TableName() string {
	return "bottles"
}

type AttributeBag map[string]any

func (v AttributeBag) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal(AttributeBag{})
	}
	return json.Marshal(v)
}

func (v *AttributeBag) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return errors.New("type assertion to []byte or string failed")
	}
}

func (b Bottle) ToDomain() domain.Bottle {
	return domain.Bottle{
		ID:            domain.ID(b.ID),
		Name:          b.Name,
		SubcategoryID: domain.ID(b.SubcategoryID),
		Quantity:      b.Quantity,
		Attributes:    domain.AttributeBag(b.Attributes),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBottle(value domain.Bottle) Bottle {
	return Bottle{
		ID:            value.ID.String(),
		Name:          value.Name,
		SubcategoryID: value.SubcategoryID.String(),
		Quantity:      value.Quantity,
		Attributes:    AttributeBag(value.Attributes),
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
