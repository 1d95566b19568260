package service

import (
	"context"
	"errors"
	"strings"

	"skincare-api/internal/model"
	"skincare-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and adds a new product.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.NewValidationError("All product details are required.")
	}

	category := req.Category
	if strings.TrimSpace(category) == "" {
		category = req.ProductType
	}

	normalised := model.CreateProductRequest{
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(category),
		SkinTypes: normaliseTags(append([]string{}, req.SkinTypes...)),
		Concerns:  normaliseTags(append([]string{}, req.Concerns...)),
	}
	if err := validateStruct(normalised); err != nil {
		s.logger.Debug().Err(err).Msg("invalid product")
		return nil, err
	}

	product := &model.Product{
		Name:      normalised.Name,
		Category:  normalised.Category,
		SkinTypes: normalised.SkinTypes,
		Concerns:  normalised.Concerns,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, model.NewStoreError("Failed to add product.", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Str("category", product.Category).
		Msg("product created")

	return product, nil
}

// List retrieves every product.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, model.NewStoreError("Failed to retrieve products.", err)
	}

	if len(products) == 0 {
		s.logger.Debug().Msg("catalogue is empty")
		return nil, model.ErrNoProducts
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Update applies a validated partial update to a product.
func (s *productService) Update(ctx context.Context, id string, update *model.ProductUpdate) (*model.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" || update == nil || update.IsEmpty() {
		return nil, model.NewValidationError("Product ID and update data are required.")
	}

	normalised := model.ProductUpdate{
		Name:     trimPtr(update.Name),
		Category: trimPtr(update.Category),
	}
	if update.SkinTypes != nil {
		tags := normaliseTags(append([]string{}, (*update.SkinTypes)...))
		normalised.SkinTypes = &tags
	}
	if update.Concerns != nil {
		tags := normaliseTags(append([]string{}, (*update.Concerns)...))
		normalised.Concerns = &tags
	}
	if err := validateStruct(normalised); err != nil {
		s.logger.Debug().Err(err).Str("product_id", id).Msg("invalid product update")
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, normalised)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, model.NewStoreError("Failed to update product.", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.NewValidationError("Product ID is required for deletion.")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Str("product_id", id).Msg("product not found")
			return model.ErrProductNotFound
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return model.NewStoreError("Failed to delete product.", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}
