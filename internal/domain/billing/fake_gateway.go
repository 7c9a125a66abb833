package billing

import (
	"context"
	"strconv"
	"sync"
)

const testCardNumber = "4242424242424242"

// FakeGateway is an in-memory PaymentGateway used by tests and local runs.
// Tokens are single-use handles minted against a card number, the way the real
// gateway's tokenization works.
type FakeGateway struct {
	mu      sync.Mutex
	tokens  map[string]string // token -> card number
	charges []*Charge
	seq     int
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		tokens: make(map[string]string),
	}
}

// GetValidTestToken mints a token for the standard test card.
func (g *FakeGateway) GetValidTestToken() string {
	return g.TokenFor(testCardNumber)
}

func (g *FakeGateway) TokenFor(cardNumber string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	token := "fake-tok_" + cardNumber[len(cardNumber)-4:] + "_" + strconv.Itoa(g.seq)
	g.tokens[token] = cardNumber
	return token
}

func (g *FakeGateway) Charge(_ context.Context, amountCents int64, token string) (*Charge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cardNumber, ok := g.tokens[token]
	if !ok {
		return nil, ErrPaymentFailed
	}
	delete(g.tokens, token)

	charge := NewCharge(amountCents, cardNumber[len(cardNumber)-4:])
	g.charges = append(g.charges, charge)
	return charge, nil
}

// NewChargesDuring runs fn and returns only the charges it created, newest
// first. The checkout flow uses this to reconcile which charges belong to one
// attempt.
func (g *FakeGateway) NewChargesDuring(fn func()) []*Charge {
	g.mu.Lock()
	before := len(g.charges)
	g.mu.Unlock()

	fn()

	g.mu.Lock()
	defer g.mu.Unlock()
	created := g.charges[before:]
	out := make([]*Charge, 0, len(created))
	for i := len(created) - 1; i >= 0; i-- {
		out = append(out, created[i])
	}
	return out
}

func (g *FakeGateway) TotalChargesAmount() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	var total int64
	for _, c := range g.charges {
		total += c.Amount()
	}
	return total
}
