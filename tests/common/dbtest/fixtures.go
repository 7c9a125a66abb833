//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, brandID uuid.UUID, priceCents int64, published bool) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, brand_id, name, description, price_cents, published) VALUES ($1, $2, $3, $4, $5, $6)",
		productID, brandID, "Test Product", "Fixture product", priceCents, published)
	require.NoError(t, err)

	return productID
}

func CreateTestItems(t *testing.T, db DBLike, productID uuid.UUID, quantity int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO items (product_id) SELECT $1 FROM generate_series(1, $2)",
		productID, quantity)
	require.NoError(t, err)
}

func CountItemsByStatus(t *testing.T, db DBLike, productID uuid.UUID, status string) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM items WHERE product_id = $1 AND status = $2",
		productID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOrders(t *testing.T, db DBLike, productID uuid.UUID) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM orders WHERE product_id = $1", productID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
