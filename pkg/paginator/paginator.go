package paginator

// Page 一页数据与分页元信息
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// TotalPages 总页数，空结果集也算一页
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return pages
}

// Clamp 把页码收敛到 [1, totalPages]，越界页码取最近的合法页
func Clamp(page int, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func Offset(page int, pageSize int) int {
	return (page - 1) * pageSize
}

func New[T any](items []T, page int, pageSize int, total int64) *Page[T] {
	totalPages := TotalPages(total, pageSize)
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
