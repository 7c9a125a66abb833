//go:build unit

package product_test

import (
	"testing"
	"time"

	"merchstore/internal/domain/product"
	"merchstore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ProductBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewProductBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Tour Hoodie", actual.Name())
		assert.Equal(t, int64(4500), actual.PriceCents())
		assert.True(t, actual.Published())
		assert.False(t, actual.IsDeleted())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("") },
				errIs:  product.ErrBlankName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("   ") },
				errIs:  product.ErrBlankName,
			},
			{
				name:   "single character name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("a") },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative price",
				mutate: func(b *builder.ProductBuilder) { b.WithPriceCents(-1) },
				errIs:  product.ErrNegativePrice,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.ProductBuilder) { b.WithPriceCents(0) },
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		p, err := builder.NewProductBuilder().WithName("  Tour Hoodie  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Tour Hoodie", p.Name())
	})

	t.Run("change price", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, p.ChangePrice(9900))
		assert.Equal(t, int64(9900), p.PriceCents())

		assert.ErrorIs(t, p.ChangePrice(-100), product.ErrNegativePrice)
		assert.Equal(t, int64(9900), p.PriceCents())
	})

	t.Run("publish and unpublish", func(t *testing.T) {
		p, err := builder.NewProductBuilder().AsUnpublished().BuildDomain()
		require.NoError(t, err)
		assert.False(t, p.AcceptsReservations())

		p.Publish()
		assert.True(t, p.Published())
		assert.True(t, p.AcceptsReservations())

		p.Unpublish()
		assert.False(t, p.Published())
		assert.False(t, p.AcceptsReservations())
	})

	t.Run("soft delete", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, p.SoftDelete(now))
		assert.True(t, p.IsDeleted())
		assert.False(t, p.Published())
		assert.False(t, p.AcceptsReservations())
		require.NotNil(t, p.DeletedAt())
		assert.Equal(t, now, *p.DeletedAt())

		assert.ErrorIs(t, p.SoftDelete(now.Add(time.Hour)), product.ErrAlreadyDeleted)
	})

	t.Run("deleted product never accepts reservations", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, p.SoftDelete(time.Now()))
		p.Publish()
		assert.False(t, p.AcceptsReservations())
	})
}
