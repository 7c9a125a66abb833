package readstore

import (
	"context"
	"time"

	"merchstore/internal/infra"
	"merchstore/internal/infra/db"
	"merchstore/internal/usecase/queries"
	"merchstore/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

// ProductByID is the command-side snapshot read: it returns soft-deleted rows
// too, with DeletedAt set, so command flows can distinguish "gone" from
// "never existed".
func (s *ProductReadStore) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	var (
		snap      shared.ProductSnapshot
		deletedAt *time.Time
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, brand_id, name, description, price_cents, published, deleted_at
		FROM products
		WHERE id = $1`,
		id).Scan(&snap.ID, &snap.BrandID, &snap.Name, &snap.Description, &snap.PriceCents, &snap.Published, &deletedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	snap.DeletedAt = deletedAt
	return &snap, nil
}

// FindByID returns the catalog view with availability counters. Soft-deleted
// products are not part of the catalog.
func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var view queries.ProductView
	err := s.db.QueryRow(ctx, `
		SELECT p.id, p.brand_id, p.name, p.description, p.price_cents, p.published,
		       p.created_at, p.updated_at,
		       count(i.id) FILTER (WHERE i.status = 'available') AS items_available,
		       count(i.id) FILTER (WHERE i.status = 'reserved')  AS items_sold
		FROM products p
		LEFT JOIN items i ON i.product_id = p.id
		WHERE p.id = $1 AND p.deleted_at IS NULL
		GROUP BY p.id`,
		id).Scan(
		&view.ID, &view.BrandID, &view.Name, &view.Description, &view.PriceCents, &view.Published,
		&view.CreatedAt, &view.UpdatedAt,
		&view.ItemsAvailable, &view.ItemsSold,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product view", err)
	}
	return &view, nil
}
