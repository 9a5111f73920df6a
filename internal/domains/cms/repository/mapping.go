package repository

import (
	"math"
	"strconv"
	"strings"
	"time"

	"lawfirm-cms/internal/infrastructure/sheets"
)

// Layouts accepted for publish dates, tried in order. Sheets exports dates
// as ISO strings, editors type them in Indonesian day-first order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// ParseDate parses a loosely formatted date. ok is false for empty or
// unrecognised input.
func ParseDate(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// IsActive treats only the exact value "false" as inactive. Sources render
// boolean false that way; every other value, empty included, is active.
func IsActive(raw string) bool {
	return raw != "false"
}

// rowID falls back to the 1-based row position when the id cell is empty.
func rowID(row sheets.Row, index int) string {
	if id := strings.TrimSpace(row.Get("id")); id != "" {
		return id
	}
	return strconv.Itoa(index + 1)
}

// rowOrder parses the order cell, falling back to the row index.
func rowOrder(row sheets.Row, index int) int {
	raw := strings.TrimSpace(row.Get("order"))
	if raw == "" {
		return index
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return index
}
