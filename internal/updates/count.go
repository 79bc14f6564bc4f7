package updates

import "strconv"

// Count is the number of pending updates for one source, or Unknown.
// The zero value is Known(0).
type Count struct {
	n       int
	unknown bool
}

// Unknown is the count reported when a source could not be checked reliably.
var Unknown = Count{unknown: true}

// Known returns a confirmed count. Negative values are clamped to zero.
func Known(n int) Count {
	if n < 0 {
		n = 0
	}
	return Count{n: n}
}

// IsKnown reports whether the count was confirmed
func (c Count) IsKnown() bool {
	return !c.unknown
}

// Value returns the count and whether it is known
func (c Count) Value() (int, bool) {
	if c.unknown {
		return 0, false
	}
	return c.n, true
}

// OrZero returns the count, treating Unknown as zero
func (c Count) OrZero() int {
	if c.unknown {
		return 0
	}
	return c.n
}

// IsZero reports whether the count is a confirmed zero
func (c Count) IsZero() bool {
	return !c.unknown && c.n == 0
}

// String renders the count as a decimal number, or "?" when unknown
func (c Count) String() string {
	if c.unknown {
		return "?"
	}
	return strconv.Itoa(c.n)
}
