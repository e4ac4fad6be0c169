package service

import (
	"context"
	"testing"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	"github.com/alimikegami/shopping-cart-service/internal/dto"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	customers *fakeCustomerRepository
	products  *fakeProductRepository
	carts     *fakeCartRepository
	service   CartService
}

func newCartFixture(t *testing.T) cartFixture {
	t.Helper()

	f := cartFixture{
		customers: newFakeCustomerRepository(),
		products:  newFakeProductRepository(),
		carts:     &fakeCartRepository{},
	}
	f.service = CreateCartService(f.carts, f.customers, f.products)

	ctx := context.Background()
	for _, email := range []string{"azpi@email.com", "dwoo@email.com"} {
		_, err := f.customers.AddCustomer(ctx, domain.Customer{Email: email})
		require.NoError(t, err)
	}
	_, err := f.products.AddProduct(ctx, domain.Product{Name: "chicken", Image: "chicken.png", Price: 10000})
	require.NoError(t, err)

	return f
}

func TestAddCartItem_SnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	item, err := f.service.AddCartItem(ctx, "azpi@email.com", dto.CartItemRequest{ProductID: 1})
	require.NoError(t, err)
	assert.Equal(t, "chicken", item.Name)
	assert.Equal(t, int64(10000), item.Price)
	assert.Equal(t, "chicken.png", item.ImageURL)

	// later product changes do not rewrite the cart
	require.NoError(t, f.products.UpdateProduct(ctx, domain.Product{ID: 1, Name: "chicken", Price: 20000}))

	items, err := f.service.GetCartItems(ctx, "azpi@email.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10000), items[0].Price)
}

func TestAddCartItem_MissingProduct(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.AddCartItem(context.Background(), "azpi@email.com", dto.CartItemRequest{ProductID: 42})
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
	assert.Empty(t, f.carts.items)
}

func TestAddCartItem_MissingCustomer(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.AddCartItem(context.Background(), "nobody@email.com", dto.CartItemRequest{ProductID: 1})
	assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
}

func TestGetCartItems_Empty(t *testing.T) {
	f := newCartFixture(t)

	items, err := f.service.GetCartItems(context.Background(), "azpi@email.com")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDeleteCartItem(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	item, err := f.service.AddCartItem(ctx, "azpi@email.com", dto.CartItemRequest{ProductID: 1})
	require.NoError(t, err)

	err = f.service.DeleteCartItem(ctx, "dwoo@email.com", item.ID)
	assert.ErrorIs(t, err, errs.ErrCartItemNotFound)

	require.NoError(t, f.service.DeleteCartItem(ctx, "azpi@email.com", item.ID))

	items, err := f.service.GetCartItems(ctx, "azpi@email.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}
