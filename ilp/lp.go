package ilp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// termsPerLine keeps LP lines well below the 560-character limit some
// readers enforce.
const termsPerLine = 8

// WriteLP serializes m in CPLEX LP format.
func (m *Model) WriteLP(w io.Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)

	if m.Name != "" {
		fmt.Fprintf(bw, "\\ Problem name: %s\n\n", m.Name)
	}
	fmt.Fprintln(bw, m.Sense.String())
	bw.WriteString(" obj:")
	m.writeTerms(bw, m.Objective)
	if m.ObjConst != 0 {
		bw.WriteString(" " + signed(m.ObjConst))
	}
	if len(m.Objective) == 0 && m.ObjConst == 0 {
		// an empty objective line is rejected by some readers
		fmt.Fprintf(bw, " 0 %s", m.Vars[0].Name)
	}
	bw.WriteString("\n")

	fmt.Fprintln(bw, "Subject To")
	for _, c := range m.Constraints {
		fmt.Fprintf(bw, " %s:", c.Name)
		m.writeTerms(bw, c.Terms)
		if len(c.Terms) == 0 {
			fmt.Fprintf(bw, " 0 %s", m.Vars[0].Name)
		}
		fmt.Fprintf(bw, " %s %s\n", c.Op, num(c.RHS))
	}

	fmt.Fprintln(bw, "Bounds")
	for _, v := range m.Vars {
		if v.Kind == Binary {
			continue
		}
		lo, hi := math.IsInf(v.Lower, -1), math.IsInf(v.Upper, 1)
		switch {
		case lo && hi:
			fmt.Fprintf(bw, " %s free\n", v.Name)
		case hi:
			fmt.Fprintf(bw, " %s >= %s\n", v.Name, num(v.Lower))
		case lo:
			fmt.Fprintf(bw, " -inf <= %s <= %s\n", v.Name, num(v.Upper))
		default:
			fmt.Fprintf(bw, " %s <= %s <= %s\n", num(v.Lower), v.Name, num(v.Upper))
		}
	}

	m.writeSection(bw, "Binaries", Binary)
	m.writeSection(bw, "Generals", Integer)
	fmt.Fprintln(bw, "End")

	return bw.Flush()
}

func (m *Model) writeTerms(bw *bufio.Writer, terms []Term) {
	for i, t := range terms {
		if i > 0 && i%termsPerLine == 0 {
			bw.WriteString("\n  ")
		}
		switch t.Coef {
		case 1:
			fmt.Fprintf(bw, " + %s", m.Vars[t.Var].Name)
		case -1:
			fmt.Fprintf(bw, " - %s", m.Vars[t.Var].Name)
		default:
			fmt.Fprintf(bw, " %s %s", signed(t.Coef), m.Vars[t.Var].Name)
		}
	}
}

func (m *Model) writeSection(bw *bufio.Writer, title string, kind VarKind) {
	n := 0
	for _, v := range m.Vars {
		if v.Kind != kind {
			continue
		}
		if n == 0 {
			fmt.Fprintln(bw, title)
		}
		if n%termsPerLine == 0 {
			if n > 0 {
				bw.WriteString("\n")
			}
			bw.WriteString(" ")
		}
		bw.WriteString(" " + v.Name)
		n++
	}
	if n > 0 {
		bw.WriteString("\n")
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// signed renders v as "+ 3" or "- 3".
func signed(v float64) string {
	if v < 0 {
		return "- " + num(-v)
	}

	return "+ " + num(v)
}
