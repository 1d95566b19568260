//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"

	"skincare-api/internal/config"
	"skincare-api/internal/database"
	"skincare-api/internal/repository"
)

// Connects with the DB_* environment, applies the schema and reports the
// catalogue size. Run with: go run scripts/check_db.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Schema setup failed: %v\n", err)
		os.Exit(1)
	}

	var dbName string
	var count int
	err = pool.QueryRow(ctx, "SELECT current_database(), (SELECT count(*) FROM products)").Scan(&dbName, &count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Connected to database %s: %d products\n", dbName, count)
}
