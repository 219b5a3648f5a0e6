// Package pagination derives limit/offset windows from the page-size and
// page-number query parameters. Invalid values fall back to defaults rather
// than erroring, so a response never fails solely because of pagination
// input.
package pagination

import "strconv"

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
)

// Params is a validated page window. Size and Number are always positive.
type Params struct {
	Size   int
	Number int
}

// Parse builds Params from the raw query values. Absent, non-numeric, or
// non-positive values are replaced with the defaults.
func Parse(sizeRaw, numberRaw string) Params {
	return Params{
		Size:   parsePositive(sizeRaw, DefaultPageSize),
		Number: parsePositive(numberRaw, DefaultPageNumber),
	}
}

func parsePositive(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// Limit is the number of records in one page.
func (p Params) Limit() int {
	return p.Size
}

// Offset is the number of records to skip before the requested page.
// Pages are 1-based, so page 1 starts at offset 0.
func (p Params) Offset() int {
	return (p.Number - 1) * p.Size
}
