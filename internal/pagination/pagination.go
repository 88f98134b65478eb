// Package pagination implements the page/limit contract shared by every
// listing endpoint: 1-based pages, limit 0 as the "return everything"
// sentinel, and ceil-division page totals.
package pagination

import (
	"errors"
	"strconv"
)

// ErrInvalid is returned for negative or non-numeric page/limit input.
var ErrInvalid = errors.New("invalid page or limit")

// invalid is what non-numeric input coerces to, so that it always fails
// the negative-value check instead of silently becoming offset 0.
const invalid = -1

type Params struct {
	Page  int // 1-based; 0 is treated as page 1
	Limit int // 0 means no limit
}

// Parse validates raw query values. Empty strings fall back to page 1 /
// limit 0, anything non-numeric or negative is rejected.
func Parse(pageStr, limitStr string) (Params, error) {
	p := Params{Page: 1, Limit: 0}
	if pageStr != "" {
		p.Page = atoi(pageStr)
	}
	if limitStr != "" {
		p.Limit = atoi(limitStr)
	}
	if p.Page < 0 || p.Limit < 0 {
		return Params{}, ErrInvalid
	}
	return p, nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return invalid
	}
	return n
}

// Offset computes the number of rows to skip. Page 0 behaves as page 1,
// so the offset never goes negative.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit == 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit); one single page covers everything
// when the limit is the unbounded sentinel.
func TotalPages(total int64, limit int) int {
	if limit == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Result is the listing envelope every paginated endpoint returns.
type Result[T any] struct {
	Items       []T   `json:"items"`
	TotalPages  int   `json:"total_page"`
	CurrentPage int   `json:"current_page"`
	Total       int64 `json:"total"`
}

func NewResult[T any](items []T, total int64, p Params) Result[T] {
	page := p.Page
	if page == 0 {
		page = 1
	}
	return Result[T]{
		Items:       items,
		TotalPages:  TotalPages(total, p.Limit),
		CurrentPage: page,
		Total:       total,
	}
}
