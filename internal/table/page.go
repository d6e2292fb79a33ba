package table

// Page is one presentation slice of an already filtered and sorted view.
type Page[T any] struct {
	Rows     []T
	Total    int
	Page     int
	PageSize int
	Pages    int
}

// Paginate slices rows without reordering them. size <= 0 returns everything as page 1.
// A page past the end yields no rows.
func Paginate[T any](rows []T, page, size int) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	total := len(rows)
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		pages := 0
		if total > 0 {
			pages = 1
		}
		return Page[T]{Rows: rows, Total: total, Page: 1, PageSize: total, Pages: pages}
	}

	pages := (total + size - 1) / size
	// compare pages before multiplying: (page-1)*size overflows for huge page numbers
	if page > pages {
		return Page[T]{Rows: []T{}, Total: total, Page: page, PageSize: size, Pages: pages}
	}
	start := (page - 1) * size
	end := min(start+size, total)
	return Page[T]{Rows: rows[start:end], Total: total, Page: page, PageSize: size, Pages: pages}
}
