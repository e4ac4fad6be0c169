package controller

import (
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/service"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/alimikegami/shopping-cart-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type CartController struct {
	service service.CartService
}

// CreateCartController registers the cart routes; every one of them acts on
// the cart of the logged-in customer.
func CreateCartController(g *echo.Group, service service.CartService, isLoggedIn echo.MiddlewareFunc) {
	cc := CartController{
		service: service,
	}
	carts := g.Group("/customers/me/carts", isLoggedIn)
	carts.GET("", cc.GetCartItems)
	carts.POST("", cc.AddCartItem)
	carts.DELETE("/:id", cc.DeleteCartItem)
}

func (c *CartController) AddCartItem(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	payload := dto.CartItemRequest{}
	if err := bindAndValidate(e, &payload, "AddCartItem"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.AddCartItem(e.Request().Context(), email, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "item added to cart", resp)
}

func (c *CartController) GetCartItems(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.GetCartItems(e.Request().Context(), email)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) DeleteCartItem(e echo.Context) error {
	email, ok := currentEmail(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.DeleteCartItem(e.Request().Context(), email, id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "item removed from cart", nil)
}
