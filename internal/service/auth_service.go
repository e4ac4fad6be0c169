package service

import (
	"context"
	"errors"

	"github.com/alimikegami/shopping-cart-service/config"
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/repository"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/alimikegami/shopping-cart-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	repo   repository.CustomerRepository
	config config.Config
}

func CreateAuthService(repo repository.CustomerRepository, config config.Config) AuthService {
	return &AuthServiceImpl{repo: repo, config: config}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	customer, err := s.repo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(customer.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return resp, errs.ErrIncorrectPassword
		}
		return resp, err
	}

	token, err := utils.CreateJWTToken(customer.ID, customer.Email, customer.ExternalID, s.config.JWTConfig.JWTSecret, s.config.JWTConfig.JWTKid)
	if err != nil {
		return
	}

	resp.Token = token
	resp.CustomerID = customer.ID

	return
}
