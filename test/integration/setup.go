package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
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
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			price NUMERIC(12, 2) NOT NULL,
			category TEXT NOT NULL,
			image_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE
		);

		CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
		CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts test categories and products. Products get staggered
// creation times so the newest-first ordering is observable.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	for _, name := range []string{"Cocina", "Hogar", "Tecnología"} {
		_, err := pool.Exec(ctx, "INSERT INTO categories (name) VALUES ($1)", name)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", name, err)
		}
	}

	base := time.Now().Add(-time.Hour)
	products := []struct {
		name     string
		price    float64
		category string
	}{
		{"Mug cerámica", 35000, "Cocina"},
		{"Set cuchillos", 120000, "Cocina"},
		{"Lámpara LED", 89000, "Hogar"},
		{"Cojín decorativo", 45000, "Hogar"},
		{"Audífonos inalámbricos", 180000, "Tecnología"},
	}

	for i, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (name, price, category, image_url, created_at) VALUES ($1, $2, $3, $4, $5)",
			p.name, p.price, p.category,
			fmt.Sprintf("https://cdn.example.com/%d.jpg", i+1),
			base.Add(time.Duration(i)*time.Minute),
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.name, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	for _, table := range []string{"products", "categories"} {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
