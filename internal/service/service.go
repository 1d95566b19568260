package service

import (
	"context"

	"skincare-api/internal/model"
)

// ProductService defines operations for product catalogue management.
type ProductService interface {
	// Create validates and adds a new product.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// List retrieves every product. An empty catalogue is model.ErrNoProducts.
	List(ctx context.Context) ([]model.Product, error)

	// Update applies a validated partial update to a product.
	Update(ctx context.Context, id string, update *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error
}

// RoutineService defines routine generation.
type RoutineService interface {
	// Generate builds a morning and night routine for the request from a
	// fresh catalogue snapshot.
	Generate(ctx context.Context, req *model.RoutineRequest) (*model.Routine, error)
}
