package queries

import (
	"context"
	"time"

	"merchstore/internal/infra"
	"merchstore/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

// ProductView is the catalog read model: the live product row plus its
// availability counters.
type ProductView struct {
	ID             uuid.UUID
	BrandID        uuid.UUID
	Name           string
	Description    string
	PriceCents     int64
	Published      bool
	ItemsAvailable int64
	ItemsSold      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v *ProductView) SoldOut() bool {
	return v.ItemsAvailable == 0
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type ProductQueries interface {
	// GetProduct returns the public catalog view; unpublished products are
	// hidden the same way missing ones are.
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// GetProductForBrand returns the view regardless of the published flag.
	GetProductForBrand(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, err
	}
	if !view.Published {
		return nil, ErrProductNotFound
	}
	return view, nil
}

func (q *productQueriesImpl) GetProductForBrand(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, err
	}
	return view, nil
}
