package models

// PageInfo describes one page of a paginated listing response.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageInfo normalizes page/limit and derives the page count.
func NewPageInfo(page, limit int, total int64) PageInfo {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return PageInfo{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
