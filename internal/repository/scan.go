package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const customerColumns = "id, external_id, email, username, hashed_password, created_at, updated_at, deleted_at"

func scanCustomer(row rowScanner) (c domain.Customer, err error) {
	err = row.Scan(&c.ID, &c.ExternalID, &c.Email, &c.Username, &c.HashedPassword, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return
}

const productColumns = "id, name, image, price, created_at, updated_at"

func scanProduct(row rowScanner) (p domain.Product, err error) {
	err = row.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	return
}

const cartItemColumns = "id, customer_id, product_id, name, price, image_url, created_at"

func scanCartItem(row rowScanner) (c domain.CartItem, err error) {
	err = row.Scan(&c.ID, &c.CustomerID, &c.ProductID, &c.Name, &c.Price, &c.ImageURL, &c.CreatedAt)
	return
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func now() int64 {
	return time.Now().UnixMilli()
}

// handleTrx commits when fn succeeds and rolls back on error or panic.
func handleTrx(ctx context.Context, db *sqlx.DB, component string, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)

	return err
}
