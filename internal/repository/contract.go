package repository

import (
	"context"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	pkgdto "github.com/alimikegami/shopping-cart-service/pkg/dto"
)

type CustomerRepository interface {
	GetCustomerByEmail(ctx context.Context, email string) (data domain.Customer, err error)
	GetCustomerByID(ctx context.Context, id int64) (data domain.Customer, err error)
	ExistsByEmail(ctx context.Context, email string) (exists bool, err error)
	AddCustomer(ctx context.Context, data domain.Customer) (id int64, err error)
	UpdateUsername(ctx context.Context, id int64, username string) (err error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) (err error)
	DeleteCustomer(ctx context.Context, id int64) (err error)
	PurgeDeletedCustomers(ctx context.Context, deletedBefore int64) (count int64, err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context) (count int64, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type CartRepository interface {
	AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error)
	GetCartItems(ctx context.Context, customerID int64) (data []domain.CartItem, err error)
	GetCartItem(ctx context.Context, customerID int64, id int64) (data domain.CartItem, err error)
	DeleteCartItem(ctx context.Context, customerID int64, id int64) (err error)
}
