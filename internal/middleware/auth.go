package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/alimikegami/shopping-cart-service/pkg/response"
	"github.com/alimikegami/shopping-cart-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	bearerPrefix       = "Bearer "
	customerContextKey = "customer"
)

type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (dto.CustomerResponse, error)
}

// IsLoggedIn rejects requests without a valid bearer token, or whose token
// no longer belongs to an active account. Tokens are bound to the account by
// customer id and external id, so a token issued before a delete does not
// carry over to a new account registered with the same email.
func IsLoggedIn(jwtSecret string, customers CustomerFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			token, err := utils.ParseJWTToken(strings.TrimPrefix(header, bearerPrefix), jwtSecret)
			if err != nil {
				log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "IsLoggedIn").Msg("")
				return response.WriteErrorResponse(c, errs.ErrTokenExpired, nil)
			}

			c.Set(utils.TokenContextKey, token)

			customerID, _, externalID := utils.ExtractTokenCustomer(c)
			if customerID == 0 || externalID == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			customer, err := customers.FindByID(c.Request().Context(), customerID)
			if err != nil {
				if errors.Is(err, errs.ErrCustomerNotFound) {
					return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
				}
				return response.WriteErrorResponse(c, err, nil)
			}

			if customer.ExternalID != externalID {
				log.Ctx(c.Request().Context()).Warn().Str("component", "IsLoggedIn").Int64("customer_id", customerID).Msg("token does not match account")
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set(customerContextKey, customer)

			return next(c)
		}
	}
}

// CurrentCustomer returns the account resolved by IsLoggedIn.
func CurrentCustomer(c echo.Context) (dto.CustomerResponse, bool) {
	customer, ok := c.Get(customerContextKey).(dto.CustomerResponse)
	return customer, ok
}
