package query

import "strings"

// Direction is the sort direction of a page.
type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// ParseDirection reads "asc" or "desc" in any case. ok is false for anything
// else, in which case the direction is Ascending.
func ParseDirection(s string) (d Direction, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC":
		return Ascending, true
	case "DESC":
		return Descending, true
	default:
		return Ascending, false
	}
}
