package domain

type Customer struct {
	ID             int64
	ExternalID     string
	Email          string
	Username       string
	HashedPassword string
	CreatedAt      int64
	UpdatedAt      int64
	DeletedAt      *int64
}
