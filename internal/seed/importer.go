package seed

import (
	"context"
	"errors"
	"fmt"

	"skincare-api/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ProductCatalog is the subset of the product service the importer needs.
type ProductCatalog interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

// Result summarises an import run. AlreadySeeded is set when the catalogue
// held products and nothing was imported.
type Result struct {
	Files         int
	Created       int
	Skipped       int
	AlreadySeeded bool
}

// Importer loads seed files and adds their products to the catalogue.
type Importer struct {
	loader   Loader
	products ProductCatalog
	logger   zerolog.Logger
}

// NewImporter creates a new catalogue importer.
func NewImporter(loader Loader, products ProductCatalog, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:   loader,
		products: products,
		logger:   logger.With().Str("component", "seed-importer").Logger(),
	}
}

// Import loads every path concurrently, then creates the products in path
// and line order. It only runs against an empty catalogue, so restarting
// with the same seed files adds nothing. Entries rejected by validation are
// skipped; a load or store failure aborts the run.
func (i *Importer) Import(ctx context.Context, paths []string) (Result, error) {
	var result Result
	if len(paths) == 0 {
		return result, nil
	}

	existing, err := i.products.List(ctx)
	switch {
	case errors.Is(err, model.ErrNoProducts):
	case err != nil:
		i.logger.Error().Err(err).Msg("seed import aborted")
		return result, fmt.Errorf("failed to check catalogue before seeding: %w", err)
	case len(existing) > 0:
		i.logger.Info().
			Int("catalogue_size", len(existing)).
			Msg("catalogue already populated, skipping seed import")
		result.AlreadySeeded = true
		return result, nil
	}

	batches := make([][]model.CreateProductRequest, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for idx, path := range paths {
		g.Go(func() error {
			products, err := i.loader.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to load seed file %s: %w", path, err)
			}
			batches[idx] = products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		i.logger.Error().Err(err).Msg("seed import aborted")
		return result, err
	}
	result.Files = len(paths)

	for idx, batch := range batches {
		for n := range batch {
			_, err := i.products.Create(ctx, &batch[n])
			if err == nil {
				result.Created++
				continue
			}
			if errors.Is(err, model.ErrValidation) {
				result.Skipped++
				i.logger.Warn().
					Err(err).
					Str("file", paths[idx]).
					Str("name", batch[n].Name).
					Msg("skipping invalid seed product")
				continue
			}
			i.logger.Error().Err(err).Str("file", paths[idx]).Msg("seed import aborted")
			return result, fmt.Errorf("failed to import seed product %q: %w", batch[n].Name, err)
		}
	}

	i.logger.Info().
		Int("files", result.Files).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Msg("catalogue seed import completed")

	return result, nil
}
