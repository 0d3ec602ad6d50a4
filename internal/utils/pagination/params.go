// Package pagination implements page/limit query parameter handling for list
// endpoints. Unlike body validation, which rejects bad input, pagination
// parameters fall back to defaults: a non-numeric or out-of-range value is
// silently replaced rather than reported as a 400.
package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds sanitized pagination values.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse sanitizes the raw page/limit query strings. page < 1 or non-numeric
// becomes DefaultPage; limit non-numeric, < 1 or > MaxLimit becomes
// DefaultLimit.
func Parse(pageStr, limitStr string) Params {
	page := DefaultPage
	if n, err := strconv.Atoi(pageStr); err == nil && n >= 1 {
		page = n
	}

	limit := DefaultLimit
	if n, err := strconv.Atoi(limitStr); err == nil && n >= 1 && n <= MaxLimit {
		limit = n
	}

	return Params{Page: page, Limit: limit}
}

// Meta is the pagination block attached to every list response.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewMeta builds the pagination metadata for a total row count.
func NewMeta(p Params, total int) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1 && total > 0,
	}
}
