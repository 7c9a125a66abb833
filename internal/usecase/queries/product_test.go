//go:build unit

package queries_test

import (
	"context"
	"testing"

	"merchstore/internal/infra"
	"merchstore/internal/usecase/queries"
	"merchstore/tests/common/builder"
	queriesmock "merchstore/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductQueries_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the published view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)

		view := builder.NewProductBuilder().BuildViewQuery()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := queries.NewProductQueries(store).GetProduct(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
		assert.False(t, actual.SoldOut())
	})

	t.Run("hides unpublished products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)

		view := builder.NewProductBuilder().AsUnpublished().BuildViewQuery()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewProductQueries(store).GetProduct(ctx, view.ID)
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("row not found", pgx.ErrNoRows))

		_, err := queries.NewProductQueries(store).GetProduct(ctx, id)
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
	})

	t.Run("zero availability reads as sold out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)

		view := builder.NewProductBuilder().AsSoldOut().BuildViewQuery()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := queries.NewProductQueries(store).GetProduct(ctx, view.ID)
		require.NoError(t, err)
		assert.True(t, actual.SoldOut())
	})
}

func TestProductQueries_GetProductForBrand(t *testing.T) {
	ctx := context.Background()

	t.Run("returns unpublished products too", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)

		view := builder.NewProductBuilder().AsUnpublished().BuildViewQuery()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := queries.NewProductQueries(store).GetProductForBrand(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})
}
