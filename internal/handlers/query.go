package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"logixy_crm/internal/table"

	"github.com/gin-gonic/gin"
)

const (
	maxPageSize = 500
	maxPage     = 1_000_000
)

// parseTableQuery reads ?q=&field=&sort=&dir=&page=&size=.
func parseTableQuery(c *gin.Context) (table.Query, error) {
	q := table.Query{
		Search:      strings.TrimSpace(c.Query("q")),
		SearchField: strings.TrimSpace(c.Query("field")),
		Sort:        table.SortState{Column: strings.TrimSpace(c.Query("sort"))},
	}

	if d := c.Query("dir"); d != "" {
		dir, err := table.ParseDirection(d)
		if err != nil {
			return table.Query{}, err
		}
		q.Sort.Direction = dir
	}

	var err error
	if q.Page, err = intParam(c, "page", 1); err != nil {
		return table.Query{}, err
	}
	if q.PageSize, err = intParam(c, "size", 0); err != nil {
		return table.Query{}, err
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if q.Page > maxPage {
		q.Page = maxPage
	}
	return q, nil
}

func intParam(c *gin.Context, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %q: must be a non-negative integer", name)
	}
	return v, nil
}
