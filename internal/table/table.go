// Package table presents a collection of records of any shape as a searchable,
// sortable, pageable table. Sort and filter are free functions over (rows, accessor)
// and never modify the caller's slice.
package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Direction of a column sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

var (
	ErrUnknownColumn    = errors.New("unknown column")
	ErrNotSortable      = errors.New("column is not sortable")
	ErrNotSearchable    = errors.New("column is not searchable")
	ErrInvalidDirection = errors.New("invalid sort direction: use asc or desc")
)

// ParseDirection accepts "asc"/"desc" (any case); empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return Ascending, ErrInvalidDirection
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// MarshalText lets Direction render as "asc"/"desc" in JSON.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Sort returns a stably sorted copy of rows ordered by the accessed value.
func Sort[T any](rows []T, value func(T) any, dir Direction) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareValues(value(a), value(b))
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// Filter keeps rows whose stringified field contains search, ignoring case.
// An empty search returns all rows in their original order.
func Filter[T any](rows []T, search string, field func(T) any) []T {
	return FilterAny(rows, search, field)
}

// FilterAny is Filter over several fields; a row matches if any field matches.
func FilterAny[T any](rows []T, search string, fields ...func(T) any) []T {
	if search == "" {
		return slices.Clone(rows)
	}
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, field := range fields {
			if strings.Contains(fold.String(stringify(field(row))), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// SortState is the active sort column and its direction.
type SortState struct {
	Column    string    `json:"column,omitempty"`
	Direction Direction `json:"direction"`
}

// Toggle flips the direction when the same column is selected again,
// and starts ascending on a different column.
func (s SortState) Toggle(column string) SortState {
	if s.Column == column {
		return SortState{Column: column, Direction: s.Direction.Reverse()}
	}
	return SortState{Column: column, Direction: Ascending}
}

// Column declares one table column over rows of type T.
type Column[T any] struct {
	Key        string
	Title      string
	Value      func(T) any
	Sortable   bool
	Searchable bool
}

// ColumnInfo is the presentation metadata of a column.
type ColumnInfo struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Sortable   bool   `json:"sortable"`
	Searchable bool   `json:"searchable"`
}

// Query describes one rendering of the table.
type Query struct {
	Search      string
	SearchField string // "" searches the table's default search keys
	Sort        SortState
	Page        int // 1-based
	PageSize    int // <= 0 disables paging
}

// Result is the filtered, sorted and paged view of the rows.
type Result[T any] struct {
	Rows     []T          `json:"rows"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Pages    int          `json:"pages"`
	Sort     SortState    `json:"sort"`
	Columns  []ColumnInfo `json:"columns"`
}

// Table binds column definitions, default search keys and a row-activation callback.
type Table[T any] struct {
	columns    []Column[T]
	byKey      map[string]Column[T]
	searchKeys []string
	onActivate func(T)
}

// Option configures a Table.
type Option[T any] func(*Table[T])

// WithSearchKeys sets the columns searched when a query names no search field.
func WithSearchKeys[T any](keys ...string) Option[T] {
	return func(t *Table[T]) { t.searchKeys = keys }
}

// WithActivate sets the callback invoked on row selection.
func WithActivate[T any](fn func(T)) Option[T] {
	return func(t *Table[T]) { t.onActivate = fn }
}

// New builds a table. Search keys default to every searchable column.
func New[T any](columns []Column[T], opts ...Option[T]) *Table[T] {
	t := &Table[T]{
		columns: columns,
		byKey:   make(map[string]Column[T], len(columns)),
	}
	for _, c := range columns {
		t.byKey[c.Key] = c
		if c.Searchable {
			t.searchKeys = append(t.searchKeys, c.Key)
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Columns returns the column metadata in display order.
func (t *Table[T]) Columns() []ColumnInfo {
	out := make([]ColumnInfo, len(t.columns))
	for i, c := range t.columns {
		out[i] = ColumnInfo{Key: c.Key, Title: c.Title, Sortable: c.Sortable, Searchable: c.Searchable}
	}
	return out
}

// Apply filters, sorts and pages rows. rows is only read.
func (t *Table[T]) Apply(rows []T, q Query) (Result[T], error) {
	fields, err := t.searchFields(q.SearchField)
	if err != nil {
		return Result[T]{}, err
	}
	view := FilterAny(rows, q.Search, fields...)

	if q.Sort.Column != "" {
		col, ok := t.byKey[q.Sort.Column]
		if !ok {
			return Result[T]{}, fmt.Errorf("%w: %q", ErrUnknownColumn, q.Sort.Column)
		}
		if !col.Sortable {
			return Result[T]{}, fmt.Errorf("%w: %q", ErrNotSortable, q.Sort.Column)
		}
		view = Sort(view, col.Value, q.Sort.Direction)
	}

	p := Paginate(view, q.Page, q.PageSize)
	return Result[T]{
		Rows:     p.Rows,
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		Pages:    p.Pages,
		Sort:     q.Sort,
		Columns:  t.Columns(),
	}, nil
}

// Activate invokes the activation callback once for row.
func (t *Table[T]) Activate(row T) {
	if t.onActivate != nil {
		t.onActivate(row)
	}
}

func (t *Table[T]) searchFields(key string) ([]func(T) any, error) {
	keys := t.searchKeys
	if key != "" {
		col, ok := t.byKey[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
		if !col.Searchable {
			return nil, fmt.Errorf("%w: %q", ErrNotSearchable, key)
		}
		keys = []string{key}
	}
	fields := make([]func(T) any, 0, len(keys))
	for _, k := range keys {
		if col, ok := t.byKey[k]; ok {
			fields = append(fields, col.Value)
		}
	}
	return fields, nil
}
