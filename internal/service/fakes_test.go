package service

import (
	"context"
	"sort"
	"sync"

	"github.com/alimikegami/shopping-cart-service/internal/domain"
	pkgdto "github.com/alimikegami/shopping-cart-service/pkg/dto"
	"github.com/alimikegami/shopping-cart-service/pkg/errs"
)

// fakeCustomerRepository keeps customers in memory with the same
// not-found and soft-delete semantics as the SQL repository.
type fakeCustomerRepository struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]domain.Customer
	purgedAt  int64
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{customers: map[int64]domain.Customer{}}
}

func (r *fakeCustomerRepository) active(email string) (domain.Customer, bool) {
	for _, c := range r.customers {
		if c.Email == email && c.DeletedAt == nil {
			return c, true
		}
	}
	return domain.Customer{}, false
}

func (r *fakeCustomerRepository) GetCustomerByEmail(ctx context.Context, email string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.active(email)
	if !ok {
		return domain.Customer{}, errs.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepository) GetCustomerByID(ctx context.Context, id int64) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[id]
	if !ok || c.DeletedAt != nil {
		return domain.Customer{}, errs.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.active(email)
	return ok, nil
}

func (r *fakeCustomerRepository) AddCustomer(ctx context.Context, data domain.Customer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active(data.Email); ok {
		return 0, errs.ErrDuplicateCustomer
	}

	r.nextID++
	data.ID = r.nextID
	r.customers[data.ID] = data
	return data.ID, nil
}

func (r *fakeCustomerRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return r.update(id, func(c *domain.Customer) { c.Username = username })
}

func (r *fakeCustomerRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	return r.update(id, func(c *domain.Customer) { c.HashedPassword = hashedPassword })
}

func (r *fakeCustomerRepository) update(id int64, fn func(c *domain.Customer)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[id]
	if !ok || c.DeletedAt != nil {
		return errs.ErrCustomerNotFound
	}
	fn(&c)
	r.customers[id] = c
	return nil
}

func (r *fakeCustomerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	deletedAt := int64(1)
	return r.update(id, func(c *domain.Customer) { c.DeletedAt = &deletedAt })
}

func (r *fakeCustomerRepository) PurgeDeletedCustomers(ctx context.Context, deletedBefore int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgedAt = deletedBefore
	var count int64
	for id, c := range r.customers {
		if c.DeletedAt != nil && *c.DeletedAt < deletedBefore {
			delete(r.customers, id)
			count++
		}
	}
	return count, nil
}

type fakeProductRepository struct {
	nextID   int64
	products map[int64]domain.Product
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[int64]domain.Product{}}
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.products[data.ID] = data
	return data.ID, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	if filter.Paginated() {
		start := filter.Offset()
		if start > len(products) {
			start = len(products)
		}
		end := start + filter.Limit
		if end > len(products) {
			end = len(products)
		}
		products = products[start:end]
	}
	return products, nil
}

func (r *fakeProductRepository) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	if _, ok := r.products[data.ID]; !ok {
		return errs.ErrProductNotFound
	}
	r.products[data.ID] = data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeCartRepository struct {
	nextID int64
	items  []domain.CartItem
}

func (r *fakeCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.items = append(r.items, data)
	return data.ID, nil
}

func (r *fakeCartRepository) GetCartItems(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0)
	for _, item := range r.items {
		if item.CustomerID == customerID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeCartRepository) GetCartItem(ctx context.Context, customerID int64, id int64) (domain.CartItem, error) {
	for _, item := range r.items {
		if item.ID == id && item.CustomerID == customerID {
			return item, nil
		}
	}
	return domain.CartItem{}, errs.ErrCartItemNotFound
}

func (r *fakeCartRepository) DeleteCartItem(ctx context.Context, customerID int64, id int64) error {
	for i, item := range r.items {
		if item.ID == id && item.CustomerID == customerID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrCartItemNotFound
}

type publishedEvent struct {
	EventType string
	Key       string
	Data      interface{}
}

type recordingPublisher struct {
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	p.events = append(p.events, publishedEvent{EventType: eventType, Key: key, Data: data})
	return p.err
}

func (p *recordingPublisher) eventTypes() []string {
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.EventType)
	}
	return types
}

type recordingMailer struct {
	sentTo []string
	err    error
}

func (m *recordingMailer) SendWelcome(ctx context.Context, email string, username string) error {
	m.sentTo = append(m.sentTo, email)
	return m.err
}
