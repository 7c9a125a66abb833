package repository

import (
	"context"
	"time"

	"merchstore/internal/domain/inventory"
	"merchstore/internal/infra"
	"merchstore/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// insertBatchSize bounds the size of a single INSERT when stock is added in
// bulk.
const insertBatchSize = 200

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

// LockAvailable selects up to limit available items and takes exclusive row
// locks on them for the rest of the enclosing transaction. A concurrent
// reservation selecting the same rows blocks here until this transaction
// commits or rolls back, then re-evaluates availability. Ordered by id so
// selection is deterministic.
func (r *ItemRepository) LockAvailable(ctx context.Context, productID uuid.UUID, limit int32) ([]*inventory.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, status, price_cents, order_id, created_at, updated_at
		FROM items
		WHERE product_id = $1 AND status = 'available'
		ORDER BY id
		LIMIT $2
		FOR UPDATE`,
		productID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock available items", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan locked items", err)
	}
	return items, nil
}

func (r *ItemRepository) MarkReserved(ctx context.Context, itemIDs []uuid.UUID, priceCents int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE items
		SET status = 'reserved', price_cents = $2, updated_at = now()
		WHERE id = ANY($1)`,
		itemIDs, priceCents)
	if err != nil {
		return infra.WrapRepoErr("failed to mark items reserved", err)
	}
	return nil
}

// Release returns reserved, unattached items to the pool and clears their
// stamped price. Items already bound to an order are left untouched.
func (r *ItemRepository) Release(ctx context.Context, itemIDs []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET status = 'available', price_cents = NULL, updated_at = now()
		WHERE id = ANY($1) AND status = 'reserved' AND order_id IS NULL`,
		itemIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release items", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ItemRepository) AttachOrder(ctx context.Context, itemIDs []uuid.UUID, orderID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET order_id = $2, updated_at = now()
		WHERE id = ANY($1) AND status = 'reserved' AND order_id IS NULL`,
		itemIDs, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach items to order", err)
	}
	if tag.RowsAffected() != int64(len(itemIDs)) {
		return infra.WrapRepoErr("some items were not attachable", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Insert creates quantity new available items, batched so one statement never
// grows unbounded.
func (r *ItemRepository) Insert(ctx context.Context, productID uuid.UUID, quantity int) error {
	for remaining := quantity; remaining > 0; remaining -= insertBatchSize {
		n := remaining
		if n > insertBatchSize {
			n = insertBatchSize
		}
		_, err := r.db.Exec(ctx, `
			INSERT INTO items (product_id)
			SELECT $1 FROM generate_series(1, $2)`,
			productID, n)
		if err != nil {
			return infra.WrapRepoErr("failed to insert items", err)
		}
	}
	return nil
}

// DeleteAvailable removes up to quantity available items. The status is
// re-checked on the outer DELETE so a row claimed between the subselect and
// the delete is never removed.
func (r *ItemRepository) DeleteAvailable(ctx context.Context, productID uuid.UUID, quantity int) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM items
		WHERE status = 'available' AND id IN (
			SELECT id FROM items
			WHERE product_id = $1 AND status = 'available'
			ORDER BY id
			LIMIT $2
		)`,
		productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to delete available items", err)
	}
	return nil
}

func (r *ItemRepository) CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error) {
	return r.countByStatus(ctx, productID, string(inventory.StatusAvailable))
}

func (r *ItemRepository) CountSold(ctx context.Context, productID uuid.UUID) (int64, error) {
	return r.countByStatus(ctx, productID, string(inventory.StatusReserved))
}

func (r *ItemRepository) countByStatus(ctx context.Context, productID uuid.UUID, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM items
		WHERE product_id = $1 AND status = $2`,
		productID, status).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count items", err)
	}
	return count, nil
}

func scanItems(rows pgx.Rows) ([]*inventory.Item, error) {
	var items []*inventory.Item
	for rows.Next() {
		var (
			id, productID        uuid.UUID
			status               string
			priceCents           *int64
			orderID              *uuid.UUID
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &productID, &status, &priceCents, &orderID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		items = append(items, inventory.ReconstructItem(
			id, productID, inventory.Status(status), priceCents, orderID, createdAt, updatedAt,
		))
	}
	return items, rows.Err()
}
