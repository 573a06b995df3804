package loans

import (
	"sort"
	"strings"
)

// SortField names a sortable loan column.
type SortField string

const (
	SortByName         SortField = "name"
	SortByInterestRate SortField = "interest_rate"
	SortByPrincipal    SortField = "principal"
	SortByDueDate      SortField = "due_date"
)

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSortField reports whether raw names a sortable column.
func ParseSortField(raw string) (SortField, bool) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(raw))); f {
	case SortByName, SortByInterestRate, SortByPrincipal, SortByDueDate:
		return f, true
	}
	return "", false
}

// ParseDirection reports whether raw names a sort direction.
func ParseDirection(raw string) (Direction, bool) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(raw))); d {
	case Ascending, Descending:
		return d, true
	}
	return "", false
}

// Sort returns a sorted copy of loans. Loans with an empty value for the
// field are placed last in either direction. An empty field or direction
// leaves the order unchanged.
func Sort(loans []Loan, field SortField, direction Direction) []Loan {
	out := make([]Loan, len(loans))
	copy(out, loans)

	if field == "" || direction == "" {
		return out
	}

	col, ok := columns[field]
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aEmpty, bEmpty := col.empty(a), col.empty(b)
		switch {
		case aEmpty:
			return false
		case bEmpty:
			return true
		}
		c := col.compare(a, b)
		if direction == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}

type column struct {
	compare func(a, b Loan) int
	empty   func(Loan) bool
}

var columns = map[SortField]column{
	SortByName: {
		compare: func(a, b Loan) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		},
		empty: func(l Loan) bool { return l.Name == "" },
	},
	SortByInterestRate: {
		compare: func(a, b Loan) int { return compareFloat(a.InterestRate, b.InterestRate) },
		empty:   func(Loan) bool { return false },
	},
	SortByPrincipal: {
		compare: func(a, b Loan) int { return compareFloat(a.Principal, b.Principal) },
		empty:   func(Loan) bool { return false },
	},
	SortByDueDate: {
		compare: func(a, b Loan) int { return a.DueDate.Compare(b.DueDate) },
		empty:   func(l Loan) bool { return l.DueDate.IsZero() },
	},
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
