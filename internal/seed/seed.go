// Package seed imports catalogue products from gzip-compressed JSON-lines
// files, stored locally or in S3.
package seed

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"skincare-api/internal/model"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading catalogue seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines file and returns one request per valid line.
	Load(ctx context.Context, path string) ([]model.CreateProductRequest, error)
}

// maxLineSize bounds a single JSON line.
const maxLineSize = 1024 * 1024

// decodeLines parses one CreateProductRequest per line. Blank lines are
// ignored and malformed lines are logged and skipped.
func decodeLines(ctx context.Context, r io.Reader, source string, logger zerolog.Logger) ([]model.CreateProductRequest, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var (
		products []model.CreateProductRequest
		lineNo   int
		skipped  int
	)
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 1 {
			if err := ctx.Err(); err != nil {
				logger.Warn().Str("source", source).Msg("seed loading cancelled")
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req model.CreateProductRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			skipped++
			logger.Warn().
				Err(err).
				Str("source", source).
				Int("line", lineNo).
				Msg("skipping malformed seed line")
			continue
		}
		products = append(products, req)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file %s: %w", source, err)
	}

	logger.Info().
		Str("source", source).
		Int("products_loaded", len(products)).
		Int("lines_skipped", skipped).
		Msg("seed file loaded")

	return products, nil
}
