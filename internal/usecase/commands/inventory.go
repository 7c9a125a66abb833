package commands

import (
	"context"

	"merchstore/internal/domain/inventory"
	"merchstore/internal/infra"
	"merchstore/internal/pkg/errs"
	"merchstore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrUnpublishedProduct      = errs.New("product is not published")
	ErrInsufficientInventory   = errs.New("not enough items remaining")
	ErrInvalidQuantity         = errs.New("quantity must be at least 1")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// InventoryCommands is the reservation engine's calling surface. Reserve and
// Release are the checkout hot path; AddItems and SetAvailable are
// administrative stock adjustments.
type InventoryCommands interface {
	Reserve(ctx context.Context, productID uuid.UUID, quantity int, email string) (*inventory.Reservation, error)
	Release(ctx context.Context, itemIDs []uuid.UUID) error
	AddItems(ctx context.Context, productID uuid.UUID, quantity int) error
	SetAvailable(ctx context.Context, productID uuid.UUID, target int) error
	CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error)
	CountSold(ctx context.Context, productID uuid.UUID) (int64, error)
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

// Reserve claims exactly quantity available items inside one transaction.
// Two concurrent calls can never claim overlapping item sets: the second
// blocks on the row locks until the first commits, then re-evaluates what is
// left. Failures leave inventory untouched; the caller retries wholesale.
func (c *inventoryCommandsImpl) Reserve(ctx context.Context, productID uuid.UUID, quantity int, email string) (*inventory.Reservation, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var reservation *inventory.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ProductByID(ctx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrProductNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !snap.AcceptsReservations() {
			return ErrUnpublishedProduct
		}

		items, err := tx.Items().LockAvailable(ctx, productID, int32(quantity))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(items) < quantity {
			return ErrInsufficientInventory
		}

		// One price snapshot for the whole claim, even if the product's price
		// changes mid-flight.
		priceCents := snap.PriceCents
		itemIDs := make([]uuid.UUID, len(items))
		for i, item := range items {
			if err := item.Reserve(priceCents); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			itemIDs[i] = item.ID()
		}

		if err := tx.Items().MarkReserved(ctx, itemIDs, priceCents); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		reservation = inventory.NewReservation(email, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Release is the compensating operation for a failed downstream step (e.g. a
// declined charge): the given items go back to available with their stamped
// price cleared.
func (c *inventoryCommandsImpl) Release(ctx context.Context, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Items().Release(ctx, itemIDs); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *inventoryCommandsImpl) AddItems(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return nil
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireProduct(ctx, tx, productID); err != nil {
			return err
		}
		if err := tx.Items().Insert(ctx, productID, quantity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// SetAvailable resizes available stock to target. It deliberately does not
// lock against concurrent reservations; a racing Reserve may observe the pre-
// or post-adjustment count.
func (c *inventoryCommandsImpl) SetAvailable(ctx context.Context, productID uuid.UUID, target int) error {
	if target < 0 {
		return ErrInvalidQuantity
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireProduct(ctx, tx, productID); err != nil {
			return err
		}
		available, err := tx.Items().CountAvailable(ctx, productID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		switch {
		case available <= int64(target):
			err = tx.Items().Insert(ctx, productID, target-int(available))
		default:
			err = tx.Items().DeleteAvailable(ctx, productID, int(available)-target)
		}
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *inventoryCommandsImpl) CountAvailable(ctx context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Items().CountAvailable(ctx, productID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	return n, err
}

func (c *inventoryCommandsImpl) CountSold(ctx context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Items().CountSold(ctx, productID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	return n, err
}

func (c *inventoryCommandsImpl) requireProduct(ctx context.Context, tx shared.Tx, productID uuid.UUID) error {
	if _, err := tx.Reads().ProductByID(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
