// SPDX-License-Identifier: MIT
//
// family.go - named graph families for ad-hoc runs.
//
// Contract:
//   - FamilySpec names one family and its sizes; N is the main size, M the
//     second dimension of grid and bipartite, Prob and Seed drive random.
//   - Constructor validation errors surface unchanged from the family's
//     own constructor.
//   - ParseIDScheme maps "decimal", "excel" and "prefix:<p>" onto the ID
//     schemes of id_fn.go.

package builder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownFamily indicates an unrecognized family or ID scheme name.
var ErrUnknownFamily = errors.New("builder: unknown graph family")

// Family names a graph family.
type Family string

const (
	FamilyPath      Family = "path"
	FamilyCycle     Family = "cycle"
	FamilyComplete  Family = "complete"
	FamilyBipartite Family = "bipartite"
	FamilyStar      Family = "star"
	FamilyWheel     Family = "wheel"
	FamilyGrid      Family = "grid"
	FamilyRandom    Family = "random"
)

// Families lists the accepted family names.
func Families() []Family {
	return []Family{
		FamilyPath, FamilyCycle, FamilyComplete, FamilyBipartite,
		FamilyStar, FamilyWheel, FamilyGrid, FamilyRandom,
	}
}

// FamilySpec selects one member of a family.
type FamilySpec struct {
	Family Family
	N, M   int
	Prob   float64
	Seed   int64
}

// String is the file stem of the member, e.g. "grid_3x4" or
// "random_12_p0.3_s7".
func (s FamilySpec) String() string {
	switch s.Family {
	case FamilyGrid, FamilyBipartite:
		return fmt.Sprintf("%s_%dx%d", s.Family, s.N, s.M)
	case FamilyRandom:
		return fmt.Sprintf("%s_%d_p%s_s%d", s.Family, s.N, strconv.FormatFloat(s.Prob, 'g', -1, 64), s.Seed)
	}

	return fmt.Sprintf("%s_%d", s.Family, s.N)
}

// Constructor returns the constructor for s and the builder options it
// needs (a seeded RNG for random).
func (s FamilySpec) Constructor() (Constructor, []BuilderOption, error) {
	switch s.Family {
	case FamilyPath:
		return Path(s.N), nil, nil
	case FamilyCycle:
		return Cycle(s.N), nil, nil
	case FamilyComplete:
		return Complete(s.N), nil, nil
	case FamilyBipartite:
		return CompleteBipartite(s.N, s.M), nil, nil
	case FamilyStar:
		return Star(s.N), nil, nil
	case FamilyWheel:
		return Wheel(s.N), nil, nil
	case FamilyGrid:
		return Grid(s.N, s.M), nil, nil
	case FamilyRandom:
		return RandomSparse(s.N, s.Prob), []BuilderOption{WithSeed(s.Seed)}, nil
	}

	return nil, nil, fmt.Errorf("Family(%q): %w", s.Family, ErrUnknownFamily)
}

// ParseFamily accepts a family name (case-insensitive).
func ParseFamily(name string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Families() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("ParseFamily(%q): %w", name, ErrUnknownFamily)
}

// ParseIDScheme maps "decimal" (or ""), "excel" and "prefix:<p>" onto
// a builder option.
func ParseIDScheme(s string) (BuilderOption, error) {
	switch {
	case s == "" || s == "decimal":
		return WithIDScheme(DefaultIDFn), nil
	case s == "excel":
		return WithExcelColumnIDs(), nil
	case strings.HasPrefix(s, "prefix:") && len(s) > len("prefix:"):
		return WithSymbNumb(strings.TrimPrefix(s, "prefix:")), nil
	}

	return nil, fmt.Errorf("ParseIDScheme(%q): %w", s, ErrUnknownFamily)
}
