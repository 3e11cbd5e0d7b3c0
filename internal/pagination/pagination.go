// Package pagination slices ordered sequences into fixed-size pages.
package pagination

// Page is a bounded-size window over an ordered result set along with the
// metadata listings render navigation from.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Number     int  `json:"number"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate cuts items into pages of the given size and returns the requested
// page. Out-of-range requests clamp instead of erroring: page <= 0 yields the
// first page, page beyond the end yields the last. An empty sequence yields a
// single empty page (TotalPages == 1). Only the last page may be short.
func Paginate[T any](items []T, size, page int) Page[T] {
	if size <= 0 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	if page <= 0 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
