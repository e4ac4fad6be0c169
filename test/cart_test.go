//go:build integration

package test

import (
	"fmt"
	"net/http"

	"github.com/alimikegami/shopping-cart-service/internal/dto"
)

func (s *IntegrationTestSuite) Test_ProductsAndCart() {
	token := s.register("cart@email.com")

	price := int64(10000)
	resp := s.do(http.MethodPost, "/products", dto.ProductRequest{Name: "chicken", Image: "https://example.com/chicken.png", Price: &price}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	product := dto.ProductResponse{}
	s.decode(resp, &product)

	resp = s.do(http.MethodPost, "/customers/me/carts", dto.CartItemRequest{ProductID: product.ID}, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	item := dto.CartItemResponse{}
	s.decode(resp, &item)
	s.Equal("chicken", item.Name)
	s.Equal(price, item.Price)

	// snapshot survives a price change
	newPrice := int64(12000)
	resp = s.do(http.MethodPut, fmt.Sprintf("/products/%d", product.ID), dto.ProductRequest{Name: "chicken", Price: &newPrice}, token)
	resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodGet, "/customers/me/carts", nil, token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	items := []dto.CartItemResponse{}
	s.decode(resp, &items)
	s.Require().Len(items, 1)
	s.Equal(price, items[0].Price)

	resp = s.do(http.MethodDelete, fmt.Sprintf("/customers/me/carts/%d", item.ID), nil, token)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodDelete, fmt.Sprintf("/customers/me/carts/%d", item.ID), nil, token)
	resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = s.do(http.MethodGet, "/products/999999", nil, "")
	resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
