package repository

import (
	"context"
	"errors"
	"fmt"

	"skincare-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, category, skin_types, concerns, created_at, updated_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a product, assigning its ID and timestamps.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, category, skin_types, concerns)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	id := uuid.NewString()
	err := r.pool.QueryRow(ctx, query,
		id, product.Name, product.Category, product.SkinTypes, product.Concerns,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}
	product.ID = id

	return nil
}

// GetAll retrieves every product in the catalogue.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Update applies a partial update to the product with the given ID.
func (r *productRepository) Update(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error) {
	query := `
		UPDATE products SET
			name = COALESCE($2, name),
			category = COALESCE($3, category),
			skin_types = COALESCE($4::text[], skin_types),
			concerns = COALESCE($5::text[], concerns),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query,
		id, update.Name, update.Category, update.SkinTypes, update.Concerns,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes the product with the given ID.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	return nil
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.SkinTypes, &p.Concerns, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
