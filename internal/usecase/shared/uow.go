package shared

import (
	"context"

	"merchstore/internal/domain/inventory"
	"merchstore/internal/domain/order"
	"merchstore/internal/domain/product"
	"merchstore/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on transient faults
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside an explicit transaction
	CommandReads() CommandReads
}

type Tx interface {
	Items() ItemRepository
	Products() ProductRepository
	Orders() OrderRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

// ItemRepository is the item store plus the locking primitives the
// reservation engine runs on. LockAvailable must hold exclusive row locks for
// the duration of the enclosing transaction.
type ItemRepository interface {
	LockAvailable(ctx context.Context, productID uuid.UUID, limit int32) ([]*inventory.Item, error)
	MarkReserved(ctx context.Context, itemIDs []uuid.UUID, priceCents int64) error
	Release(ctx context.Context, itemIDs []uuid.UUID) (int64, error)
	AttachOrder(ctx context.Context, itemIDs []uuid.UUID, orderID uuid.UUID) error
	Insert(ctx context.Context, productID uuid.UUID, quantity int) error
	DeleteAvailable(ctx context.Context, productID uuid.UUID, quantity int) error
	CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error)
	CountSold(ctx context.Context, productID uuid.UUID) (int64, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
}
