//go:build unit

package billing_test

import (
	"context"
	"testing"

	"merchstore/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Contract tests: any PaymentGateway implementation must pass these.

func TestFakeGateway_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("charge with a valid token succeeds", func(t *testing.T) {
		gateway := billing.NewFakeGateway()

		charge, err := gateway.Charge(ctx, 2500, gateway.GetValidTestToken())
		require.NoError(t, err)

		assert.Equal(t, int64(2500), charge.Amount())
		assert.Equal(t, "4242", charge.CardLastFour())
		assert.Equal(t, int64(2500), gateway.TotalChargesAmount())
	})

	t.Run("charge records the tokenized card's last four", func(t *testing.T) {
		gateway := billing.NewFakeGateway()
		token := gateway.TokenFor("4000000000001234")

		charge, err := gateway.Charge(ctx, 100, token)
		require.NoError(t, err)
		assert.Equal(t, "1234", charge.CardLastFour())
	})

	t.Run("charge with an invalid token fails", func(t *testing.T) {
		gateway := billing.NewFakeGateway()

		_, err := gateway.Charge(ctx, 2500, "invalid-payment-token")
		assert.ErrorIs(t, err, billing.ErrPaymentFailed)
		assert.Equal(t, int64(0), gateway.TotalChargesAmount())
	})

	t.Run("tokens are single use", func(t *testing.T) {
		gateway := billing.NewFakeGateway()
		token := gateway.GetValidTestToken()

		_, err := gateway.Charge(ctx, 100, token)
		require.NoError(t, err)

		_, err = gateway.Charge(ctx, 100, token)
		assert.ErrorIs(t, err, billing.ErrPaymentFailed)
	})
}

func TestFakeGateway_NewChargesDuring(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes to charges created during the callback", func(t *testing.T) {
		gateway := billing.NewFakeGateway()

		_, err := gateway.Charge(ctx, 5000, gateway.GetValidTestToken())
		require.NoError(t, err)

		charges := gateway.NewChargesDuring(func() {
			_, err := gateway.Charge(ctx, 2500, gateway.GetValidTestToken())
			require.NoError(t, err)
		})

		require.Len(t, charges, 1)
		assert.Equal(t, int64(2500), charges[0].Amount())
	})

	t.Run("returns newest first", func(t *testing.T) {
		gateway := billing.NewFakeGateway()

		charges := gateway.NewChargesDuring(func() {
			_, err := gateway.Charge(ctx, 100, gateway.GetValidTestToken())
			require.NoError(t, err)
			_, err = gateway.Charge(ctx, 200, gateway.GetValidTestToken())
			require.NoError(t, err)
		})

		require.Len(t, charges, 2)
		assert.Equal(t, int64(200), charges[0].Amount())
		assert.Equal(t, int64(100), charges[1].Amount())
	})
}
