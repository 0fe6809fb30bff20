package ilp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for model construction and validation.
var (
	ErrDuplicateName = errors.New("ilp: duplicate name")
	ErrBadName       = errors.New("ilp: name not valid in LP format")
	ErrUnknownVar    = errors.New("ilp: unknown variable")
	ErrBadBounds     = errors.New("ilp: empty or invalid bounds")
	ErrBadCoef       = errors.New("ilp: coefficient is NaN or infinite")
	ErrEmptyModel    = errors.New("ilp: model has no variables")
	ErrViolated      = errors.New("ilp: point violates the model")
)

// Sense is the optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}

	return "Minimize"
}

// VarKind is the domain of a column.
type VarKind int

const (
	Continuous VarKind = iota
	Integer
	Binary
)

func (k VarKind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	}

	return "continuous"
}

// Op is the relation of a row.
type Op int

const (
	LE Op = iota
	EQ
	GE
)

func (o Op) String() string {
	switch o {
	case EQ:
		return "="
	case GE:
		return ">="
	}

	return "<="
}

// Var is one column.
type Var struct {
	Name  string
	Kind  VarKind
	Lower float64
	Upper float64
}

// Term is Coef times column Var.
type Term struct {
	Var  int
	Coef float64
}

// Constraint is the row Σ Terms Op RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Op    Op
	RHS   float64
}

// Model is a mixed-integer linear program.
type Model struct {
	Name        string
	Sense       Sense
	Vars        []Var
	Objective   []Term
	ObjConst    float64
	Constraints []Constraint

	names map[string]struct{}
	vars  map[string]int
}

// NewModel returns an empty model.
func NewModel(name string, sense Sense) *Model {
	return &Model{
		Name:  name,
		Sense: sense,
		names: make(map[string]struct{}),
		vars:  make(map[string]int),
	}
}

// AddBinary adds a 0/1 column and returns its index.
func (m *Model) AddBinary(name string) (int, error) {
	return m.addVar(Var{Name: name, Kind: Binary, Lower: 0, Upper: 1})
}

// AddInteger adds an integer column with bounds [lb, ub].
func (m *Model) AddInteger(name string, lb, ub int) (int, error) {
	return m.addVar(Var{Name: name, Kind: Integer, Lower: float64(lb), Upper: float64(ub)})
}

// AddContinuous adds a real column; ub may be math.Inf(1).
func (m *Model) AddContinuous(name string, lb, ub float64) (int, error) {
	return m.addVar(Var{Name: name, Kind: Continuous, Lower: lb, Upper: ub})
}

func (m *Model) addVar(v Var) (int, error) {
	if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || v.Lower > v.Upper {
		return -1, fmt.Errorf("%w: %s in [%g, %g]", ErrBadBounds, v.Name, v.Lower, v.Upper)
	}
	if err := m.claim(v.Name); err != nil {
		return -1, err
	}
	idx := len(m.Vars)
	m.Vars = append(m.Vars, v)
	m.vars[v.Name] = idx

	return idx, nil
}

// claim reserves a row or column name; the two share one namespace.
func (m *Model) claim(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if _, dup := m.names[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	m.names[name] = struct{}{}

	return nil
}

// AddConstraint appends the row Σ terms op rhs.
func (m *Model) AddConstraint(name string, terms []Term, op Op, rhs float64) error {
	if err := m.checkTerms(name, terms); err != nil {
		return err
	}
	if err := m.claim(name); err != nil {
		return err
	}
	m.Constraints = append(m.Constraints, Constraint{Name: name, Terms: terms, Op: op, RHS: rhs})

	return nil
}

// SetObjective replaces the objective with Σ terms + constant.
func (m *Model) SetObjective(terms []Term, constant float64) error {
	if err := m.checkTerms("objective", terms); err != nil {
		return err
	}
	m.Objective = terms
	m.ObjConst = constant

	return nil
}

func (m *Model) checkTerms(where string, terms []Term) error {
	for _, t := range terms {
		if t.Var < 0 || t.Var >= len(m.Vars) {
			return fmt.Errorf("%w: column %d in %s", ErrUnknownVar, t.Var, where)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return fmt.Errorf("%w: %s", ErrBadCoef, where)
		}
	}

	return nil
}

// Var returns the column index of name.
func (m *Model) Var(name string) (int, bool) {
	i, ok := m.vars[name]

	return i, ok
}

// Validate re-checks the whole model. Models built through the Add*
// methods are valid by construction; Validate guards models assembled by
// hand or mutated after construction.
func (m *Model) Validate() error {
	if len(m.Vars) == 0 {
		return ErrEmptyModel
	}
	seen := make(map[string]struct{}, len(m.Vars)+len(m.Constraints))
	for _, v := range m.Vars {
		if !validName(v.Name) {
			return fmt.Errorf("%w: %q", ErrBadName, v.Name)
		}
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, v.Name)
		}
		seen[v.Name] = struct{}{}
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || v.Lower > v.Upper {
			return fmt.Errorf("%w: %s in [%g, %g]", ErrBadBounds, v.Name, v.Lower, v.Upper)
		}
		if v.Kind != Continuous && (math.IsInf(v.Lower, 0) || math.IsInf(v.Upper, 0)) {
			return fmt.Errorf("%w: %s %s column must be bounded", ErrBadBounds, v.Kind, v.Name)
		}
	}
	if err := m.checkTerms("objective", m.Objective); err != nil {
		return err
	}
	for _, c := range m.Constraints {
		if !validName(c.Name) {
			return fmt.Errorf("%w: %q", ErrBadName, c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = struct{}{}
		if err := m.checkTerms(c.Name, c.Terms); err != nil {
			return err
		}
	}

	return nil
}

// Stats summarizes model size.
type Stats struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	Binaries   int `json:"binaries"`
	Integers   int `json:"integers"`
	Continuous int `json:"continuous"`
	NonZeros   int `json:"nonzeros"`
}

// Stats counts rows, columns by kind and constraint nonzeros.
func (m *Model) Stats() Stats {
	s := Stats{Rows: len(m.Constraints), Cols: len(m.Vars)}
	for _, v := range m.Vars {
		switch v.Kind {
		case Binary:
			s.Binaries++
		case Integer:
			s.Integers++
		default:
			s.Continuous++
		}
	}
	for _, c := range m.Constraints {
		s.NonZeros += len(c.Terms)
	}

	return s
}

// Eval returns the objective value at x.
func (m *Model) Eval(x []float64) float64 {
	obj := m.ObjConst
	for _, t := range m.Objective {
		obj += t.Coef * x[t.Var]
	}

	return obj
}

// Check verifies that x satisfies bounds, integrality and every row
// within tol. The first violation is returned wrapped in ErrViolated.
func (m *Model) Check(x []float64, tol float64) error {
	if len(x) != len(m.Vars) {
		return fmt.Errorf("%w: %d values for %d columns", ErrViolated, len(x), len(m.Vars))
	}
	for i, v := range m.Vars {
		if x[i] < v.Lower-tol || x[i] > v.Upper+tol {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrViolated, v.Name, x[i], v.Lower, v.Upper)
		}
		if v.Kind != Continuous && math.Abs(x[i]-math.Round(x[i])) > tol {
			return fmt.Errorf("%w: %s=%g not integral", ErrViolated, v.Name, x[i])
		}
	}
	for _, c := range m.Constraints {
		lhs := 0.0
		for _, t := range c.Terms {
			lhs += t.Coef * x[t.Var]
		}
		ok := true
		switch c.Op {
		case LE:
			ok = lhs <= c.RHS+tol
		case GE:
			ok = lhs >= c.RHS-tol
		case EQ:
			ok = math.Abs(lhs-c.RHS) <= tol
		}
		if !ok {
			return fmt.Errorf("%w: row %s: %g %s %g", ErrViolated, c.Name, lhs, c.Op, c.RHS)
		}
	}

	return nil
}

// validName accepts names legal in the LP format: at most 255 chars of
// letters, digits and !"#$%&()/,.;?@_`'{}|~, not starting with a digit
// or a period, and not starting with e/E followed by a digit or sign.
func validName(s string) bool {
	if s == "" || len(s) > 255 {
		return false
	}
	c0 := s[0]
	if c0 == '.' || (c0 >= '0' && c0 <= '9') {
		return false
	}
	if (c0 == 'e' || c0 == 'E') && len(s) > 1 {
		c1 := s[1]
		if (c1 >= '0' && c1 <= '9') || c1 == '+' || c1 == '-' {
			return false
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '_':
		default:
			switch c {
			case '!', '"', '#', '$', '%', '&', '(', ')', '/', ',', ';', '?', '@', '`', '\'', '{', '}', '|', '~':
			default:
				return false
			}
		}
	}

	return true
}
