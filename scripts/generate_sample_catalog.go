//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"skincare-api/internal/model"
)

// Writes data/catalog/products.jsonl.gz, one product per line, covering
// every routine step for oily/acne and dry/aging plus one "all" skin type
// product per morning step. Load it with SEED_FILES=data/catalog/products.jsonl.gz.
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []model.CreateProductRequest{
		{Name: "Salicylic Gel Cleanser", Category: "cleanser", SkinTypes: []string{"oily", "combination"}, Concerns: []string{"acne"}},
		{Name: "Clarifying Toner", Category: "toner", SkinTypes: []string{"oily"}, Concerns: []string{"acne", "pores"}},
		{Name: "Niacinamide Serum", Category: "serum", SkinTypes: []string{"all"}, Concerns: []string{"acne", "dullness"}},
		{Name: "Oil-Free Moisturizer", Category: "moisturizer", SkinTypes: []string{"oily"}, Concerns: []string{"acne"}},
		{Name: "Mattifying SPF 50", Category: "sunscreen", SkinTypes: []string{"oily", "combination"}, Concerns: []string{"acne"}},
		{Name: "Adapalene Night Gel", Category: "night-treatment", SkinTypes: []string{"oily"}, Concerns: []string{"acne"}},

		{Name: "Cream Cleanser", Category: "cleanser", SkinTypes: []string{"dry", "sensitive"}, Concerns: []string{"aging", "redness"}},
		{Name: "Hydrating Essence", Category: "toner", SkinTypes: []string{"dry"}, Concerns: []string{"aging"}},
		{Name: "Peptide Serum", Category: "serum", SkinTypes: []string{"dry", "normal"}, Concerns: []string{"aging"}},
		{Name: "Barrier Repair Cream", Category: "moisturizer", SkinTypes: []string{"dry"}, Concerns: []string{"aging", "redness"}},
		{Name: "Tinted Mineral SPF 30", Category: "sunscreen", SkinTypes: []string{"all"}, Concerns: []string{"aging", "redness"}},
		{Name: "Retinol Night Treatment", Category: "night treatment", SkinTypes: []string{"dry", "normal"}, Concerns: []string{"aging"}},

		{Name: "Vitamin C Serum", Category: "serum", SkinTypes: []string{"all"}, Concerns: []string{"dullness", "aging"}},
		{Name: "Gel Moisturizer", Category: "moisturizer", SkinTypes: []string{"all"}, Concerns: []string{"dullness"}},
		{Name: "Jade Face Roller", Category: "tool", SkinTypes: []string{"all"}, Concerns: []string{"dullness"}},
	}

	filePath := filepath.Join(dataDir, "products.jsonl.gz")
	if err := writeCatalog(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func writeCatalog(filePath string, products []model.CreateProductRequest) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product %q: %w", p.Name, err)
		}
	}

	return nil
}
