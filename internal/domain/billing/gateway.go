package billing

import (
	"context"
	"errors"
)

// ErrPaymentFailed is returned by a gateway when a charge is declined. The
// checkout flow must release the reserved items before propagating it.
var ErrPaymentFailed = errors.New("payment failed")

// PaymentGateway is the external collaborator the checkout flow charges
// through. Implementations live outside this repository; FakeGateway stands in
// for tests and local runs.
type PaymentGateway interface {
	Charge(ctx context.Context, amountCents int64, token string) (*Charge, error)
}

type Charge struct {
	amountCents  int64
	cardLastFour string
}

func NewCharge(amountCents int64, cardLastFour string) *Charge {
	return &Charge{
		amountCents:  amountCents,
		cardLastFour: cardLastFour,
	}
}

func (c *Charge) Amount() int64        { return c.amountCents }
func (c *Charge) CardLastFour() string { return c.cardLastFour }
