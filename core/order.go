// File: order.go
// Role: Natural ordering of vertex IDs.
//
// Generators label vertices "0".."n-1"; plain lexicographic order would put
// "10" before "2" and scramble every report. NaturalLess sorts IDs that are
// non-negative decimal integers numerically, ahead of all other IDs, which
// keep lexicographic order among themselves.

package core

import (
	"sort"
	"strconv"
)

// NaturalLess reports whether vertex ID a sorts before b.
func NaturalLess(a, b string) bool {
	ai, aNum := parseIndex(a)
	bi, bNum := parseIndex(b)
	switch {
	case aNum && bNum:
		if ai != bi {
			return ai < bi
		}
		// "01" and "1" are distinct IDs with equal value.
		return a < b
	case aNum:
		return true
	case bNum:
		return false
	}

	return a < b
}

// SortIDs sorts ids in place using NaturalLess.
func SortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return NaturalLess(ids[i], ids[j]) })
}

func parseIndex(s string) (uint64, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, false
	}

	return n, true
}
