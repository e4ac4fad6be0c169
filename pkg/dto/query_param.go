package dto

// Filter bounds keep (Page-1)*Limit far below the int range.
type Filter struct {
	Limit int `query:"limit" validate:"gte=0,lte=100"`
	Page  int `query:"page" validate:"gte=0,lte=1000000"`
}

// Paginated reports whether both limit and page were supplied.
func (f Filter) Paginated() bool {
	return f.Limit > 0 && f.Page > 0
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type PaginationMetadata struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
