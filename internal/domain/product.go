package domain

import (
	"strings"

	"github.com/alimikegami/shopping-cart-service/pkg/errs"
)

type Product struct {
	ID        int64
	Name      string
	Image     string
	Price     int64
	CreatedAt int64
	UpdatedAt int64
}

// NewProduct returns errs.ErrInvalidProduct for a blank name or a negative price.
func NewProduct(id int64, name, image string, price int64) (Product, error) {
	if strings.TrimSpace(name) == "" || price < 0 {
		return Product{}, errs.ErrInvalidProduct
	}

	return Product{
		ID:    id,
		Name:  name,
		Image: image,
		Price: price,
	}, nil
}
