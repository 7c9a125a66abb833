package commands

import (
	"context"
	"log/slog"

	"merchstore/internal/domain/billing"
	"merchstore/internal/domain/order"
	"merchstore/internal/pkg/errs"
	"merchstore/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPaymentFailed = errs.New("payment failed")

type PurchaseParams struct {
	ProductID    uuid.UUID
	Quantity     int
	Email        string
	PaymentToken string
}

// CheckoutCommands drives the reserve -> charge -> finalize flow. The engine
// only allocates units; this flow owns the payment call and the compensating
// release when the charge is declined.
type CheckoutCommands interface {
	Purchase(ctx context.Context, params PurchaseParams) (*order.Order, error)
}

type checkoutCommandsImpl struct {
	inventory InventoryCommands
	gateway   billing.PaymentGateway
	uow       shared.UnitOfWork
}

func NewCheckoutCommands(inventory InventoryCommands, gateway billing.PaymentGateway, uow shared.UnitOfWork) CheckoutCommands {
	return &checkoutCommandsImpl{
		inventory: inventory,
		gateway:   gateway,
		uow:       uow,
	}
}

func (c *checkoutCommandsImpl) Purchase(ctx context.Context, params PurchaseParams) (*order.Order, error) {
	reservation, err := c.inventory.Reserve(ctx, params.ProductID, params.Quantity, params.Email)
	if err != nil {
		return nil, err
	}

	charge, err := c.gateway.Charge(ctx, reservation.TotalCents(), params.PaymentToken)
	if err != nil {
		if releaseErr := c.inventory.Release(ctx, reservation.ItemIDs()); releaseErr != nil {
			slog.Error("failed to release items after declined charge",
				"product_id", params.ProductID.String(),
				"error", releaseErr.Error())
		}
		return nil, errs.Mark(err, ErrPaymentFailed)
	}

	ord, err := order.NewOrder(params.ProductID, params.Email, charge.Amount(), charge.CardLastFour(), reservation.ItemIDs())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Orders().Create(ctx, ord); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Items().AttachOrder(ctx, ord.ItemIDs(), ord.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		// The charge is already captured at this point; the units stay
		// reserved for reconciliation rather than being silently resold.
		return nil, err
	}

	return ord, nil
}
