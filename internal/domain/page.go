package domain

// Page is the paged-list response shape. CurrentPage is 1-based.
type Page[T any] struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Size        int   `json:"size"`
	TotalItems  int64 `json:"totalItems"`
	Items       []T   `json:"items"`
}

func NewPage[T any](items []T, page, size int, totalItems int64) Page[T] {
	totalPages := int(totalItems / int64(size))
	if totalItems%int64(size) != 0 {
		totalPages++
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		CurrentPage: page,
		TotalPages:  totalPages,
		Size:        size,
		TotalItems:  totalItems,
		Items:       items,
	}
}
