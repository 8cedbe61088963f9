package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FilterAll is the UI's "no filter" choice in select boxes.
const FilterAll = "all"

// FilterValue is the only place where the "all" sentinel and empty values
// become "no filter" (nil). The sentinel is matched exactly, so "ALL" is a
// real value.
func FilterValue(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" || v == FilterAll {
		return nil
	}
	return &v
}

// QueryFilter reads a filter value from the query string.
func QueryFilter(c *fiber.Ctx, key string) *string {
	return FilterValue(c.Query(key))
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
// Use together with ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ContainsPattern builds a lower-cased %s% pattern for LOWER(col) LIKE ?.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(strings.ToLower(strings.TrimSpace(s))) + "%"
}
