package commands

import (
	"context"
	"time"

	"merchstore/internal/domain/product"
	"merchstore/internal/infra"
	"merchstore/internal/pkg/clock"
	"merchstore/internal/pkg/errs"
	"merchstore/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDomainValidation = errs.New("domain validation error")

type CreateProductParams struct {
	BrandID         uuid.UUID
	Name            string
	Description     string
	PriceCents      int64
	Published       bool
	InitialQuantity int
}

type UpdateProductParams struct {
	Name        string
	Description string
	PriceCents  int64
	Published   bool
}

type ProductCommands interface {
	Create(ctx context.Context, params CreateProductParams) (uuid.UUID, error)
	Update(ctx context.Context, productID uuid.UUID, params UpdateProductParams) error
	// Destroy drains available stock and soft-deletes the product. Reserved
	// and sold units are retained so existing orders stay queryable.
	Destroy(ctx context.Context, productID uuid.UUID) error
}

type productCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProductCommands(uow shared.UnitOfWork, clk clock.Clock) ProductCommands {
	return &productCommandsImpl{uow: uow, clock: clk}
}

func (c *productCommandsImpl) Create(ctx context.Context, params CreateProductParams) (uuid.UUID, error) {
	if params.InitialQuantity < 0 {
		return uuid.Nil, ErrInvalidQuantity
	}

	p, err := product.NewProduct(params.BrandID, params.Name, params.Description, params.PriceCents, params.Published)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Create(ctx, p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if params.InitialQuantity > 0 {
			if err := tx.Items().Insert(ctx, p.ID(), params.InitialQuantity); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (c *productCommandsImpl) Update(ctx context.Context, productID uuid.UUID, params UpdateProductParams) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.loadProduct(ctx, tx, productID)
		if err != nil {
			return err
		}

		if err := p.Rename(params.Name, params.Description); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		// Stamped prices on already-reserved items are untouched by design.
		if err := p.ChangePrice(params.PriceCents); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if params.Published {
			p.Publish()
		} else {
			p.Unpublish()
		}

		if err := tx.Products().Update(ctx, p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *productCommandsImpl) Destroy(ctx context.Context, productID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := c.loadProduct(ctx, tx, productID)
		if err != nil {
			return err
		}

		available, err := tx.Items().CountAvailable(ctx, productID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if available > 0 {
			if err := tx.Items().DeleteAvailable(ctx, productID, int(available)); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := p.SoftDelete(c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Products().Update(ctx, p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *productCommandsImpl) loadProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID) (*product.Product, error) {
	snap, err := tx.Reads().ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.DeletedAt != nil {
		return nil, ErrProductNotFound
	}
	return product.ReconstructProduct(
		snap.ID, snap.BrandID, snap.Name, snap.Description, snap.PriceCents, snap.Published,
		time.Time{}, time.Time{}, snap.DeletedAt,
	), nil
}
