package service

import (
	"context"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/internal/repository"
)

type CartServiceImpl struct {
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func CreateCartService(cartRepo repository.CartRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, customerRepo: customerRepo, productRepo: productRepo}
}

// AddCartItem stores a snapshot of the product as it is right now.
func (s *CartServiceImpl) AddCartItem(ctx context.Context, email string, req dto.CartItemRequest) (resp dto.CartItemResponse, err error) {
	customer, err := s.customerRepo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return
	}

	item := domain.CartItem{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Name:       product.Name,
		Price:      product.Price,
		ImageURL:   product.Image,
	}

	item.ID, err = s.cartRepo.AddCartItem(ctx, item)
	if err != nil {
		return
	}

	return toCartItemResponse(item), nil
}

func (s *CartServiceImpl) GetCartItems(ctx context.Context, email string) (resp []dto.CartItemResponse, err error) {
	customer, err := s.customerRepo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return
	}

	items, err := s.cartRepo.GetCartItems(ctx, customer.ID)
	if err != nil {
		return
	}

	resp = make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCartItemResponse(item))
	}

	return resp, nil
}

func (s *CartServiceImpl) DeleteCartItem(ctx context.Context, email string, cartItemID int64) (err error) {
	customer, err := s.customerRepo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return
	}

	return s.cartRepo.DeleteCartItem(ctx, customer.ID, cartItemID)
}

func toCartItemResponse(item domain.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		ImageURL:  item.ImageURL,
	}
}
