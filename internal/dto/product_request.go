package dto

type ProductRequest struct {
	ID    int64  `json:"-"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image" validate:"omitempty,url"`
	Price *int64 `json:"price" validate:"required,gte=0"`
}
