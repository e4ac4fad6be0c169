package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CartRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCartRepository(db *sqlx.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error) {
	err = r.db.QueryRowxContext(ctx,
		"INSERT INTO cart_items(customer_id, product_id, name, price, image_url, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		data.CustomerID, data.ProductID, data.Name, data.Price, data.ImageURL, now(),
	).Scan(&id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCartItem").Msg("")
		return 0, fmt.Errorf("add cart item: %w", err)
	}

	return id, nil
}

func (r *CartRepositoryImpl) GetCartItems(ctx context.Context, customerID int64) (data []domain.CartItem, err error) {
	rows, err := r.db.QueryxContext(ctx, "SELECT "+cartItemColumns+" FROM cart_items WHERE customer_id = $1 ORDER BY id", customerID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
		return nil, fmt.Errorf("get cart items: %w", err)
	}
	defer rows.Close()

	data = make([]domain.CartItem, 0)
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItems").Msg("")
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		data = append(data, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}

	return data, nil
}

func (r *CartRepositoryImpl) GetCartItem(ctx context.Context, customerID int64, id int64) (data domain.CartItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT "+cartItemColumns+" FROM cart_items WHERE id = $1 AND customer_id = $2", id, customerID)
	data, err = scanCartItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrCartItemNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartItem").Msg("")
		return data, fmt.Errorf("get cart item: %w", err)
	}

	return
}

// DeleteCartItem only removes items owned by customerID.
func (r *CartRepositoryImpl) DeleteCartItem(ctx context.Context, customerID int64, id int64) (err error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE id = $1 AND customer_id = $2", id, customerID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return fmt.Errorf("delete cart item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	if affected == 0 {
		return errs.ErrCartItemNotFound
	}

	return nil
}
