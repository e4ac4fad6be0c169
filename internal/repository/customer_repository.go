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

type CustomerRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) GetCustomerByEmail(ctx context.Context, email string) (data domain.Customer, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE email = $1 AND deleted_at IS NULL", email)
	data, err = scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrCustomerNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCustomerByEmail").Msg("")
		return data, fmt.Errorf("get customer by email: %w", err)
	}

	return
}

func (r *CustomerRepositoryImpl) GetCustomerByID(ctx context.Context, id int64) (data domain.Customer, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1 AND deleted_at IS NULL", id)
	data, err = scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return data, errs.ErrCustomerNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCustomerByID").Msg("")
		return data, fmt.Errorf("get customer by id: %w", err)
	}

	return
}

func (r *CustomerRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (exists bool, err error) {
	err = r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND deleted_at IS NULL)", email)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ExistsByEmail").Msg("")
		return false, fmt.Errorf("check customer email: %w", err)
	}

	return
}

func (r *CustomerRepositoryImpl) AddCustomer(ctx context.Context, data domain.Customer) (id int64, err error) {
	timestamp := now()

	err = r.db.QueryRowxContext(ctx,
		"INSERT INTO customers(external_id, email, username, hashed_password, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		data.ExternalID, data.Email, data.Username, data.HashedPassword, timestamp, timestamp,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, errs.ErrDuplicateCustomer
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCustomer").Msg("")
		return 0, fmt.Errorf("add customer: %w", err)
	}

	return id, nil
}

func (r *CustomerRepositoryImpl) UpdateUsername(ctx context.Context, id int64, username string) (err error) {
	return r.updateCustomer(ctx, "UpdateUsername", "UPDATE customers SET username = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL", username, id)
}

func (r *CustomerRepositoryImpl) UpdatePassword(ctx context.Context, id int64, hashedPassword string) (err error) {
	return r.updateCustomer(ctx, "UpdatePassword", "UPDATE customers SET hashed_password = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL", hashedPassword, id)
}

func (r *CustomerRepositoryImpl) updateCustomer(ctx context.Context, component string, query string, value string, id int64) error {
	result, err := r.db.ExecContext(ctx, query, value, now(), id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return fmt.Errorf("update customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}

	if affected == 0 {
		return errs.ErrCustomerNotFound
	}

	return nil
}

// DeleteCustomer soft deletes the customer and empties their cart.
func (r *CustomerRepositoryImpl) DeleteCustomer(ctx context.Context, id int64) (err error) {
	return handleTrx(ctx, r.db, "DeleteCustomer", func(tx *sqlx.Tx) error {
		timestamp := now()

		result, err := tx.ExecContext(ctx, "UPDATE customers SET deleted_at = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL", timestamp, timestamp, id)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCustomer").Msg("")
			return fmt.Errorf("delete customer: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}

		if affected == 0 {
			return errs.ErrCustomerNotFound
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM cart_items WHERE customer_id = $1", id)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCustomer").Msg("")
			return fmt.Errorf("delete customer cart: %w", err)
		}

		return nil
	})
}

func (r *CustomerRepositoryImpl) PurgeDeletedCustomers(ctx context.Context, deletedBefore int64) (count int64, err error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE deleted_at IS NOT NULL AND deleted_at < $1", deletedBefore)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PurgeDeletedCustomers").Msg("")
		return 0, fmt.Errorf("purge customers: %w", err)
	}

	return result.RowsAffected()
}
