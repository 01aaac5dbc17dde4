package dto

// Page is the list envelope returned by every collection endpoint.
type Page[T any] struct {
	Items     []T `json:"items"`
	TotalPage int `json:"total_page"`
	TotalData int `json:"total_data"`
}
