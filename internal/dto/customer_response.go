package dto

type CustomerResponse struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	CustomerID int64  `json:"customer_id"`
}
