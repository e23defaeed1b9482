package utils

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxPage      = 100000
	MaxLimit     = 100
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ResolvePage applies the defaults to optional page and limit values and
// clamps them so the offset cannot overflow.
func ResolvePage(page, limit *int) (int, int) {
	p, l := DefaultPage, DefaultLimit
	if page != nil && *page > 0 {
		p = min(*page, MaxPage)
	}
	if limit != nil && *limit > 0 {
		l = min(*limit, MaxLimit)
	}
	return p, l
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// PageOf slices one page out of an already loaded list.
func PageOf[T any](items []T, page, limit int) []T {
	start := Offset(page, limit)
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
