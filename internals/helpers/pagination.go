package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 500
)

// Paging is the page/limit pair read from the query string. All means the
// caller asked for the complete list (?limit=all).
type Paging struct {
	Page  int
	Limit int
	All   bool
}

func (p Paging) Offset() int { return (p.Page - 1) * p.Limit }

// ParsePaging returns nil when neither page nor limit is present, so the
// caller can serve the unpaged list.
func ParsePaging(c *fiber.Ctx) *Paging {
	pageRaw := strings.TrimSpace(c.Query("page"))
	limitRaw := strings.TrimSpace(c.Query("limit"))
	if pageRaw == "" && limitRaw == "" {
		return nil
	}
	if limitRaw == FilterAll {
		return &Paging{Page: DefaultPage, All: true}
	}
	return &Paging{
		Page:  clampPage(atoiDefault(pageRaw, DefaultPage)),
		Limit: clampLimit(atoiDefault(limitRaw, DefaultLimit)),
	}
}

// NewPaging normalises raw numbers the same way ParsePaging does.
func NewPaging(page, limit int) Paging {
	return Paging{Page: clampPage(page), Limit: clampLimit(limit)}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clampPage(p int) int {
	if p < 1 {
		return DefaultPage
	}
	return p
}

func clampLimit(l int) int {
	if l < 1 {
		return DefaultLimit
	}
	if l > MaxLimit {
		return MaxLimit
	}
	return l
}

// Meta untuk response list berhalaman
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func BuildMeta(total int64, p Paging) Meta {
	totalPages := 0
	if total > 0 && p.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
