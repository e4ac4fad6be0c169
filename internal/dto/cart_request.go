package dto

type CartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}
