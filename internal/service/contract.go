package service

import (
	"context"

	"github.com/alimikegami/shopping-cart-service/internal/dto"
	pkgdto "github.com/alimikegami/shopping-cart-service/pkg/dto"
)

// Domain events published after successful writes.
const (
	EventCustomerRegistered = "customer_registered"
	EventCustomerUpdated    = "customer_updated"
	EventCustomerDeleted    = "customer_deleted"
	EventProductAdded       = "product_added"
	EventProductUpdated     = "product_updated"
	EventProductDeleted     = "product_deleted"
)

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{}) error
}

type Mailer interface {
	SendWelcome(ctx context.Context, email string, username string) error
}

type CustomerService interface {
	Save(ctx context.Context, req dto.CustomerRequest) (resp dto.CustomerResponse, err error)
	FindByEmail(ctx context.Context, email string) (resp dto.CustomerResponse, err error)
	FindByID(ctx context.Context, id int64) (resp dto.CustomerResponse, err error)
	ChangePassword(ctx context.Context, email string, req dto.ChangePasswordRequest) (err error)
	Update(ctx context.Context, email string, username string) (resp dto.CustomerResponse, err error)
	Delete(ctx context.Context, email string, password string) (err error)
	PurgeDeletedCustomers()
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error)
	GetProductByID(ctx context.Context, id int64) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type CartService interface {
	AddCartItem(ctx context.Context, email string, req dto.CartItemRequest) (resp dto.CartItemResponse, err error)
	GetCartItems(ctx context.Context, email string) (resp []dto.CartItemResponse, err error)
	DeleteCartItem(ctx context.Context, email string, cartItemID int64) (err error)
}
