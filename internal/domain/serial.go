package domain

import (
	"sort"
	"strconv"
	"strings"
)

// AcceptsSerial reports whether the serial number belongs to this passport:
// it must start with the passport's prefix and its remaining numeric suffix
// must fall inside [FromSerialNumber, ToSerialNumber]. A malformed suffix
// never matches.
func (p Passport) AcceptsSerial(serialNumber string) bool {
	if p.SerialPrefix == "" || !strings.HasPrefix(serialNumber, p.SerialPrefix) {
		return false
	}

	suffix := serialNumber[len(p.SerialPrefix):]
	if suffix == "" || !isDigits(suffix) {
		return false
	}

	n, err := strconv.Atoi(suffix)
	if err != nil {
		return false
	}

	return n >= p.FromSerialNumber && n <= p.ToSerialNumber
}

// MatchingPassports returns every candidate that accepts the serial number,
// ordered by passport id ascending. Ranges are non-overlapping per prefix at
// write time, so more than one match signals stale or hand-edited data; the
// caller decides how to report it.
func MatchingPassports(serialNumber string, candidates []Passport) []Passport {
	var matches []Passport
	for _, p := range candidates {
		if p.AcceptsSerial(serialNumber) {
			matches = append(matches, p)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})

	return matches
}

// RangesOverlap reports whether the inclusive ranges [a1,a2] and [b1,b2]
// share at least one value.
func RangesOverlap(a1, a2, b1, b2 int) bool {
	return a1 <= b2 && b1 <= a2
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
