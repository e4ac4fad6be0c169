package domain

// CartItem copies the product's name, price and image at the time it was added.
type CartItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Name       string
	Price      int64
	ImageURL   string
	CreatedAt  int64
}
