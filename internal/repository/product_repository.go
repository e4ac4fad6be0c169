package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	pkgdto "github.com/alimikegami/shopping-cart-service/pkg/dto"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := now()

	err = r.db.QueryRowxContext(ctx,
		"INSERT INTO products(name, image, price, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		data.Name, data.Image, data.Price, timestamp, timestamp,
	).Scan(&id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, fmt.Errorf("add product: %w", err)
	}

	return id, nil
}

// GetProducts returns products in id order; an empty table yields an empty slice.
func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	query := "SELECT " + productColumns + " FROM products ORDER BY id"
	var args []interface{}

	if filter.Paginated() {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, filter.Limit, filter.Offset())
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer rows.Close()

	data = make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
			return nil, fmt.Errorf("scan product: %w", err)
		}
		data = append(data, product)
	}

	if err = rows.Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("get products: %w", err)
	}

	return data, nil
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM products")
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, fmt.Errorf("count products: %w", err)
	}

	return
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	data, err = scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrProductNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, fmt.Errorf("get product by id: %w", err)
	}

	return
}

// UpdateProduct replaces name, image and price. A missing id is reported
// as errs.ErrProductNotFound rather than silently ignored.
func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE products SET name = $1, image = $2, price = $3, updated_at = $4 WHERE id = $5",
		data.Name, data.Image, data.Price, now(), data.ID,
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return fmt.Errorf("update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if affected == 0 {
		log.Ctx(ctx).Warn().Str("component", "UpdateProduct").Int64("product_id", data.ID).Msg("product not found")
		return errs.ErrProductNotFound
	}

	return nil
}

// DeleteProduct also removes every cart item that references the product.
func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	return handleTrx(ctx, r.db, "DeleteProduct", func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
			return fmt.Errorf("delete product: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}

		if affected == 0 {
			return errs.ErrProductNotFound
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM cart_items WHERE product_id = $1", id)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
			return fmt.Errorf("delete product cart items: %w", err)
		}

		return nil
	})
}
