package repository

import (
	"context"

	"merchstore/internal/domain/product"
	"merchstore/internal/infra"
	"merchstore/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, brand_id, name, description, price_cents, published)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID(), p.BrandID(), p.Name(), p.Description(), p.PriceCents(), p.Published())
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price_cents = $4, published = $5,
		    deleted_at = $6, updated_at = now()
		WHERE id = $1`,
		p.ID(), p.Name(), p.Description(), p.PriceCents(), p.Published(), p.DeletedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
