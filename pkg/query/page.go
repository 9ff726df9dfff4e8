package query

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a normalized 1-based page request.
type Page struct {
	Page     int
	PageSize int
}

func NewPage(page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Page{Page: page, PageSize: pageSize}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Page) Limit() int {
	return p.PageSize
}

// TotalPages is ceil(total / pageSize).
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.PageSize <= 0 {
		return 0
	}
	return int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
}
