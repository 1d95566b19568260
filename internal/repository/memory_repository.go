package repository

import (
	"context"
	"sync"
	"time"

	"skincare-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryRepository is an in-process ProductRepository. It keeps insertion
// order and hands out copies so callers never share its slices.
type memoryRepository struct {
	mu       sync.RWMutex
	products map[string]*model.Product
	order    []string
	now      func() time.Time
	logger   zerolog.Logger
}

// NewMemoryProductRepository creates an empty in-memory product repository.
func NewMemoryProductRepository(logger zerolog.Logger) ProductRepository {
	return &memoryRepository{
		products: make(map[string]*model.Product),
		now:      time.Now,
		logger:   logger.With().Str("repository", "product-memory").Logger(),
	}
}

func (r *memoryRepository) Create(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := cloneProduct(*product)
	r.products[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	r.logger.Debug().Str("product_id", stored.ID).Str("name", stored.Name).Msg("product stored")
	return nil
}

func (r *memoryRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, cloneProduct(*r.products[id]))
	}
	return products, nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, update model.ProductUpdate) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	update.Apply(p)
	p.UpdatedAt = r.now().UTC()

	updated := cloneProduct(*p)
	return &updated, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	delete(r.products, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneProduct(p model.Product) model.Product {
	p.SkinTypes = append([]string(nil), p.SkinTypes...)
	p.Concerns = append([]string(nil), p.Concerns...)
	return p
}
