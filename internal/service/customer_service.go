package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/shopping-cart-service/config"
	"github.com/alimikegami/shopping-cart-service/internal/domain"
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/repository"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = bcrypt.DefaultCost

type CustomerServiceImpl struct {
	repo      repository.CustomerRepository
	config    config.Config
	publisher EventPublisher
	mailer    Mailer
}

func CreateCustomerService(repo repository.CustomerRepository, config config.Config, publisher EventPublisher, mailer Mailer) CustomerService {
	return &CustomerServiceImpl{repo: repo, config: config, publisher: publisher, mailer: mailer}
}

func (s *CustomerServiceImpl) Save(ctx context.Context, req dto.CustomerRequest) (resp dto.CustomerResponse, err error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	if exists {
		return resp, errs.ErrDuplicateCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return resp, fmt.Errorf("hash password: %w", err)
	}

	customer := domain.Customer{
		ExternalID:     ulid.Make().String(),
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: string(hash),
	}

	customer.ID, err = s.repo.AddCustomer(ctx, customer)
	if err != nil {
		return
	}

	resp = toCustomerResponse(customer)

	publishEvent(ctx, s.publisher, EventCustomerRegistered, customer.ExternalID, resp)

	if err := s.mailer.SendWelcome(ctx, customer.Email, customer.Username); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Save").Msg("welcome mail not sent")
	}

	return resp, nil
}

func (s *CustomerServiceImpl) FindByEmail(ctx context.Context, email string) (resp dto.CustomerResponse, err error) {
	customer, err := s.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return
	}

	return toCustomerResponse(customer), nil
}

func (s *CustomerServiceImpl) FindByID(ctx context.Context, id int64) (resp dto.CustomerResponse, err error) {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return
	}

	return toCustomerResponse(customer), nil
}

func (s *CustomerServiceImpl) ChangePassword(ctx context.Context, email string, req dto.ChangePasswordRequest) (err error) {
	customer, err := s.findWithPassword(ctx, email, req.OldPassword)
	if err != nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordHashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, customer.ID, string(hash))
}

func (s *CustomerServiceImpl) Update(ctx context.Context, email string, username string) (resp dto.CustomerResponse, err error) {
	customer, err := s.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return
	}

	err = s.repo.UpdateUsername(ctx, customer.ID, username)
	if err != nil {
		return
	}

	customer.Username = username
	resp = toCustomerResponse(customer)

	publishEvent(ctx, s.publisher, EventCustomerUpdated, customer.ExternalID, resp)

	return resp, nil
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, email string, password string) (err error) {
	customer, err := s.findWithPassword(ctx, email, password)
	if err != nil {
		return
	}

	err = s.repo.DeleteCustomer(ctx, customer.ID)
	if err != nil {
		return
	}

	publishEvent(ctx, s.publisher, EventCustomerDeleted, customer.ExternalID, toCustomerResponse(customer))

	return nil
}

// PurgeDeletedCustomers hard-deletes customers soft deleted longer ago than the retention window.
func (s *CustomerServiceImpl) PurgeDeletedCustomers() {
	log.Info().Str("component", "PurgeDeletedCustomers").Msg("cron starts")

	before := time.Now().Add(-s.config.CustomerRetention).UnixMilli()
	count, err := s.repo.PurgeDeletedCustomers(context.Background(), before)
	if err != nil {
		log.Error().Err(err).Str("component", "PurgeDeletedCustomers").Msg("")
		return
	}

	log.Info().Str("component", "PurgeDeletedCustomers").Int64("purged", count).Msg("cron ends")
}

func (s *CustomerServiceImpl) findWithPassword(ctx context.Context, email string, password string) (customer domain.Customer, err error) {
	customer, err = s.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(customer.HashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return customer, errs.ErrIncorrectPassword
		}
		return customer, fmt.Errorf("compare password: %w", err)
	}

	return customer, nil
}

func toCustomerResponse(customer domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:         customer.ID,
		ExternalID: customer.ExternalID,
		Email:      customer.Email,
		Username:   customer.Username,
	}
}
