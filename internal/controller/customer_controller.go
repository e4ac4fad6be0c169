package controller

import (
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/middleware"
	"github.com/alimikegami/shopping-cart-service/internal/service"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/alimikegami/shopping-cart-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CustomerController struct {
	service service.CustomerService
}

func CreateCustomerController(g *echo.Group, service service.CustomerService, isLoggedIn echo.MiddlewareFunc) {
	cc := CustomerController{
		service: service,
	}
	g.POST("/customers", cc.Save)
	g.GET("/customers/me", cc.FindMe, isLoggedIn)
	g.PATCH("/customers/me", cc.Update, isLoggedIn)
	g.PATCH("/customers/me/password", cc.ChangePassword, isLoggedIn)
	g.DELETE("/customers/me", cc.Delete, isLoggedIn)
}

func (c *CustomerController) Save(e echo.Context) error {
	payload := dto.CustomerRequest{}
	if err := bindAndValidate(e, &payload, "Save"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.Save(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "customer registered", resp)
}

func (c *CustomerController) FindMe(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.FindByEmail(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CustomerController) Update(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.UpdateCustomerRequest{}
	if err := bindAndValidate(e, &payload, "Update"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.Update(e.Request().Context(), email, payload.Username)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "customer updated", resp)
}

func (c *CustomerController) ChangePassword(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.ChangePasswordRequest{}
	if err := bindAndValidate(e, &payload, "ChangePassword"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	err := c.service.ChangePassword(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "password changed", nil)
}

func (c *CustomerController) Delete(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.DeleteCustomerRequest{}
	if err := bindAndValidate(e, &payload, "Delete"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	err := c.service.Delete(e.Request().Context(), email, payload.Password)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "customer deleted", nil)
}

// bindAndValidate returns errs.ErrClient for malformed bodies and the
// validator's error for rejected fields.
func bindAndValidate(e echo.Context, payload interface{}, component string) error {
	if err := e.Bind(payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", component).Msg("")
		return errs.ErrClient
	}

	return e.Validate(payload)
}

// currentEmail is the email of the account IsLoggedIn resolved from the token.
func currentEmail(e echo.Context) (string, bool) {
	customer, ok := middleware.CurrentCustomer(e)
	return customer.Email, ok && customer.Email != ""
}
