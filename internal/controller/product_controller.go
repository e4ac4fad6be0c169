package controller

import (
	"strconv"

	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/service"
	pkgdto "github.com/alimikegami/shopping-cart-service/pkg/dto"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/alimikegami/shopping-cart-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	pc := ProductController{
		service: service,
	}
	g.GET("/products", pc.GetProducts)
	g.GET("/products/:id", pc.GetProductByID)
	g.POST("/products", pc.AddProduct, isLoggedIn)
	g.PUT("/products/:id", pc.UpdateProduct, isLoggedIn)
	g.DELETE("/products/:id", pc.DeleteProduct, isLoggedIn)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := bindAndValidate(e, &payload, "AddProduct"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "product added", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := bindAndValidate(e, &filter, "GetProducts"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductRequest{}
	if err := bindAndValidate(e, &payload, "UpdateProduct"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}
	payload.ID = id

	resp, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product updated", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	err = c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product deleted", nil)
}

func pathID(e echo.Context) (int64, error) {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrClient
	}
	return id, nil
}
