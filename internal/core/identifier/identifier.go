// Package identifier contains the pure business logic for scanned tag identifiers.
// This is part of the Functional Core - no I/O, only pure functions.
package identifier

import (
	"math"
	"strconv"
)

// Identifier is a scanned code broken into its letter prefix, numeric core and
// trailing suffix, e.g. "E1645X" -> {E, 1645, X}.
type Identifier struct {
	Prefix string
	Number int64
	Suffix string
}

// Split breaks raw into prefix, number and suffix around the first run of
// decimal digits. Only the first run is numeric; anything after it, including
// further digits, is returned verbatim as the suffix. Split never fails: an
// empty or overflowing numeric run yields Number 0.
func Split(raw string) Identifier {
	prefixEnd := len(raw)
	for i := 0; i < len(raw); i++ {
		if isDigit(raw[i]) {
			prefixEnd = i
			break
		}
	}

	numberEnd := len(raw)
	for i := prefixEnd; i < len(raw); i++ {
		if !isDigit(raw[i]) {
			numberEnd = i
			break
		}
	}

	return Identifier{
		Prefix: raw[:prefixEnd],
		Number: parseRun(raw[prefixEnd:numberEnd]),
		Suffix: raw[numberEnd:],
	}
}

// Increment adds delta to the numeric core, saturating at the int64 bounds.
func Increment(id Identifier, delta int64) Identifier {
	id.Number = saturatingAdd(id.Number, delta)
	return id
}

// String joins the parts back together. Leading zeros of the scanned code
// are not restored.
func (id Identifier) String() string {
	return id.Prefix + strconv.FormatInt(id.Number, 10) + id.Suffix
}

func parseRun(run string) int64 {
	if run == "" {
		return 0
	}
	n, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
