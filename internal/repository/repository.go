package repository

import (
	"context"

	"skincare-api/internal/model"
)

// ProductRepository defines the interface for product catalogue storage.
type ProductRepository interface {
	// Create inserts a product, assigning its ID and timestamps.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves every product in the catalogue. An empty catalogue
	// yields an empty slice and no error.
	GetAll(ctx context.Context) ([]model.Product, error)

	// Update applies a partial update to the product with the given ID.
	// Returns model.ErrProductNotFound if the ID is unknown.
	Update(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error)

	// Delete removes the product with the given ID.
	// Returns model.ErrProductNotFound if the ID is unknown.
	Delete(ctx context.Context, id string) error
}
