package integration

import (
	"context"
	"testing"
	"time"

	"skincare-api/internal/config"
	"skincare-api/internal/database"
	"skincare-api/internal/model"
	"skincare-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// SetupTestDB creates a PostgreSQL test container, a pool built by
// database.NewPool and the products schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Config:    dbConfig,
	}
}

// TestProducts is a catalogue where oily/acne has exactly one candidate per
// routine step, so generated routines are deterministic.
func TestProducts() []model.Product {
	return []model.Product{
		{Name: "Foaming Cleanser", Category: "cleanser", SkinTypes: []string{"oily"}, Concerns: []string{"acne"}},
		{Name: "BHA Toner", Category: "toner", SkinTypes: []string{"all"}, Concerns: []string{"acne"}},
		{Name: "Niacinamide Serum", Category: "serum", SkinTypes: []string{"Oily"}, Concerns: []string{"Acne"}},
		{Name: "Light Moisturizer", Category: "moisturizer", SkinTypes: []string{"oily", "combination"}, Concerns: []string{"acne"}},
		{Name: "Matte SPF", Category: "sunscreen", SkinTypes: []string{"all"}, Concerns: []string{"acne", "aging"}},
		{Name: "Retinoid Gel", Category: "Night-Treatment", SkinTypes: []string{"oily"}, Concerns: []string{"acne"}},
		{Name: "Rich Cream", Category: "moisturizer", SkinTypes: []string{"dry"}, Concerns: []string{"aging"}},
		{Name: "Face Roller", Category: "tool", SkinTypes: []string{"all"}, Concerns: []string{"acne"}},
	}
}

// SeedProducts inserts TestProducts through the repository and returns them
// with their assigned ids.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()
	repo := repository.NewProductRepository(pool, zerolog.Nop())

	products := TestProducts()
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			t.Fatalf("failed to seed product %s: %v", products[i].Name, err)
		}
	}
	return products
}

// CleanupDB removes all products.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM products"); err != nil {
		t.Logf("failed to clean products table: %v", err)
	}
}
