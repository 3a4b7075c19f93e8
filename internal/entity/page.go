package entity

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest normalises page and limit: values below 1 fall back to the
// defaults and limit is capped at maxLimit when maxLimit is positive. Page is
// capped so that its offset still fits in an int.
func NewPageRequest(page, limit, maxLimit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if last := lastPage(limit); page > last {
		page = last
	}
	return PageRequest{Page: page, Limit: limit}
}

// ParsePageRequest coerces raw query values the way parseInt would: leading
// digits count, anything else falls back to the default.
func ParsePageRequest(page, limit string, maxLimit int) PageRequest {
	return NewPageRequest(leadingInt(page), leadingInt(limit), maxLimit)
}

func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return (min(p.Page, lastPage(p.Limit)) - 1) * p.Limit
}

// lastPage is the highest page whose offset does not overflow.
func lastPage(limit int) int {
	return math.MaxInt / limit
}

type Page[T any] struct {
	Docs          []T   `json:"docs"`
	TotalDocs     int64 `json:"totalDocs"`
	Limit         int   `json:"limit"`
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	PagingCounter int   `json:"pagingCounter"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	HasNextPage   bool  `json:"hasNextPage"`
	PrevPage      *int  `json:"prevPage"`
	NextPage      *int  `json:"nextPage"`
}

func NewPage[T any](docs []T, total int64, req PageRequest) *Page[T] {
	if docs == nil {
		docs = []T{}
	}

	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	page := &Page[T]{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         req.Limit,
		Page:          req.Page,
		TotalPages:    totalPages,
		PagingCounter: req.Offset() + 1,
		HasPrevPage:   req.Page > 1,
		HasNextPage:   req.Page < totalPages,
	}
	if page.HasPrevPage {
		prev := req.Page - 1
		page.PrevPage = &prev
	}
	if page.HasNextPage {
		next := req.Page + 1
		page.NextPage = &next
	}
	return page
}

// MapPage converts the documents of a page while keeping its counters.
func MapPage[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	docs := make([]U, len(p.Docs))
	for i, d := range p.Docs {
		docs[i] = fn(d)
	}
	return &Page[U]{
		Docs:          docs,
		TotalDocs:     p.TotalDocs,
		Limit:         p.Limit,
		Page:          p.Page,
		TotalPages:    p.TotalPages,
		PagingCounter: p.PagingCounter,
		HasPrevPage:   p.HasPrevPage,
		HasNextPage:   p.HasNextPage,
		PrevPage:      p.PrevPage,
		NextPage:      p.NextPage,
	}
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
