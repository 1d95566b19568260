package model

import "time"

// Product represents a skincare product in the catalogue.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	SkinTypes []string  `json:"skin_types" db:"skin_types"`
	Concerns  []string  `json:"concerns" db:"concerns"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateProductRequest represents the request payload for adding a product.
type CreateProductRequest struct {
	Name      string   `json:"name" validate:"required"`
	Category  string   `json:"category" validate:"required"`
	SkinTypes []string `json:"skin_types" validate:"required,min=1,dive,required"`
	Concerns  []string `json:"concerns" validate:"required,min=1,dive,required"`

	// ProductType is the legacy name of Category.
	ProductType string `json:"product_type,omitempty" validate:"-"`
}

// ProductUpdate lists the fields of a product that may change.
// A nil field is left untouched.
type ProductUpdate struct {
	Name      *string   `json:"name,omitempty" validate:"omitnil,min=1"`
	Category  *string   `json:"category,omitempty" validate:"omitnil,min=1"`
	SkinTypes *[]string `json:"skin_types,omitempty" validate:"omitnil,min=1,dive,required"`
	Concerns  *[]string `json:"concerns,omitempty" validate:"omitnil,min=1,dive,required"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.SkinTypes == nil && u.Concerns == nil
}

// Apply copies the set fields of u onto p.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.SkinTypes != nil {
		p.SkinTypes = append([]string(nil), (*u.SkinTypes)...)
	}
	if u.Concerns != nil {
		p.Concerns = append([]string(nil), (*u.Concerns)...)
	}
}
