package controller

import (
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/service"
	"github.com/alimikegami/shopping-cart-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(g *echo.Group, service service.AuthService) {
	ac := AuthController{
		service: service,
	}
	g.POST("/auth/login", ac.Login)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := bindAndValidate(e, &payload, "Login"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
