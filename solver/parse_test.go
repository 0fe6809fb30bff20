package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/ilp"
)

func parseModel(t *testing.T) *ilp.Model {
	t.Helper()
	m := ilp.NewModel("p", ilp.Minimize)
	for _, name := range []string{"x_0_1", "x_0_2", "z"} {
		_, err := m.AddBinary(name)
		require.NoError(t, err)
	}

	return m
}

func TestParseCplexSolution(t *testing.T) {
	m := parseModel(t)
	raw := []byte(`<?xml version = "1.0" encoding="UTF-8" standalone="yes"?>
<CPLEXSolution version="1.2">
 <header
   problemName="model.lp"
   objectiveValue="1"
   solutionTypeValue="3"
   solutionTypeString="primal"
   solutionStatusValue="101"
   solutionStatusString="integer optimal solution"
   MIPNodes="0"/>
 <variables>
  <variable name="x_0_1" index="0" value="1"/>
  <variable name="x_0_2" index="1" value="-0"/>
  <variable name="z" index="2" value="1"/>
 </variables>
</CPLEXSolution>`)
	sol := &ilp.Solution{}
	require.NoError(t, parseCplexSolution(raw, m, sol))
	require.Equal(t, ilp.Optimal, sol.Status)
	require.Equal(t, "integer optimal solution", sol.Message)
	require.Equal(t, []float64{1, 0, 1}, sol.Values)
	require.Equal(t, 1.0, sol.Objective)

	infeasible := []byte(`<CPLEXSolution><header objectiveValue="0" solutionStatusValue="103" solutionStatusString="integer infeasible"/></CPLEXSolution>`)
	sol = &ilp.Solution{}
	require.NoError(t, parseCplexSolution(infeasible, m, sol))
	require.Equal(t, ilp.Infeasible, sol.Status)
	require.False(t, sol.HasValues())

	unknown := []byte(`<CPLEXSolution><header solutionStatusValue="101"/><variables><variable name="w" value="1"/></variables></CPLEXSolution>`)
	require.ErrorIs(t, parseCplexSolution(unknown, m, &ilp.Solution{}), ErrSolverFailed)
	require.ErrorIs(t, parseCplexSolution([]byte("not xml"), m, &ilp.Solution{}), ErrSolverFailed)
}

func TestCplexStatus(t *testing.T) {
	for code, want := range map[int]ilp.Status{
		101: ilp.Optimal, 102: ilp.Optimal, 103: ilp.Infeasible, 119: ilp.Infeasible,
		107: ilp.TimeLimit, 108: ilp.TimeLimit, 104: ilp.Feasible, 999: ilp.Unknown,
	} {
		got, _ := cplexStatus(code)
		require.Equalf(t, want, got, "code %d", code)
	}
	_, has := cplexStatus(108)
	require.False(t, has)
	_, has = cplexStatus(107)
	require.True(t, has)
}

func TestParseHighsSolution(t *testing.T) {
	m := parseModel(t)
	raw := []byte(`Model status
Optimal

# Primal solution values
Feasible
Objective 1
# Columns 3
x_0_1 1
x_0_2 0
z 1
# Rows 1
OneColor_0 1

# Dual solution values
None
`)
	sol := &ilp.Solution{}
	require.NoError(t, parseHighsSolution(raw, m, sol))
	require.Equal(t, ilp.Optimal, sol.Status)
	require.Equal(t, []float64{1, 0, 1}, sol.Values)
	require.Equal(t, 1.0, sol.Objective)

	old := []byte("Model status: Infeasible\n\n# Primal solution values\nNone\n")
	sol = &ilp.Solution{}
	require.NoError(t, parseHighsSolution(old, m, sol))
	require.Equal(t, ilp.Infeasible, sol.Status)
	require.False(t, sol.HasValues())

	timeLimit := []byte("Model status\nTime limit reached\n\n# Primal solution values\nFeasible\nObjective 2\n# Columns 3\nx_0_1 0\nx_0_2 1\nz 2\n")
	sol = &ilp.Solution{}
	require.NoError(t, parseHighsSolution(timeLimit, m, sol))
	require.Equal(t, ilp.TimeLimit, sol.Status)
	require.Equal(t, 2.0, sol.Value(2))

	require.ErrorIs(t, parseHighsSolution([]byte("garbage\n"), m, &ilp.Solution{}), ErrSolverFailed)
	bad := []byte("Model status\nOptimal\n# Primal solution values\nFeasible\n# Columns 1\nw 1\n")
	require.ErrorIs(t, parseHighsSolution(bad, m, &ilp.Solution{}), ErrSolverFailed)
}
