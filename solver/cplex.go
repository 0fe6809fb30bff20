package solver

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/ilp"
)

// CplexName is the registry name of the CPLEX backend.
const CplexName = "cplex"

const cplexBinary = "cplex"

func init() {
	Register(CplexName, NewCplex)
}

// Cplex drives the CPLEX interactive optimizer through a command file:
// read the LP model, optimize, write the XML solution.
type Cplex struct {
	opts ilp.Options
}

// NewCplex is the Factory for the cplex backend. The binary is looked up
// at Solve time so the backend can be listed without CPLEX installed.
func NewCplex(opts ilp.Options) (ilp.Solver, error) {
	return &Cplex{opts: opts}, nil
}

// Name implements ilp.Solver.
func (c *Cplex) Name() string { return CplexName }

// Solve implements ilp.Solver.
func (c *Cplex) Solve(ctx context.Context, m *ilp.Model) (*ilp.Solution, error) {
	start := time.Now()
	log := c.opts.Log().With(zap.String("backend", CplexName))
	bin, err := lookBinary(CplexName, cplexBinary, c.opts.Binary)
	if err != nil {
		return nil, err
	}
	dir, cleanup, err := workspace(CplexName, c.opts)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	modelPath, err := writeLPFile(CplexName, dir, m)
	if err != nil {
		return nil, err
	}
	solPath := filepath.Join(dir, "model.sol")
	cmdPath := filepath.Join(dir, "commands.txt")
	if err := c.writeCommands(cmdPath, modelPath, solPath); err != nil {
		return nil, err
	}

	out, runErr := run(ctx, log, CplexName, dir, bin, "-f", cmdPath)
	sol := &ilp.Solution{Backend: CplexName, Runtime: time.Since(start)}
	if runErr != nil {
		if ctx.Err() != nil {
			sol.Status = ilp.TimeLimit
			sol.Message = ctx.Err().Error()
			return sol, nil
		}
		return nil, runErr
	}
	stdout := string(out)
	if c.opts.Verbose {
		log.Debug("cplex output", zap.String("tail", tail(out)))
	}
	if i := strings.Index(stdout, "CPLEX Error"); i >= 0 {
		end := strings.IndexByte(stdout[i:], '\n')
		if end < 0 {
			end = len(stdout) - i
		}
		return nil, errors.Wrapf(ErrSolverFailed, "%s: %s", CplexName, strings.TrimSpace(stdout[i:i+end]))
	}

	raw, err := os.ReadFile(solPath)
	if os.IsNotExist(err) {
		// CPLEX writes no solution file when there is nothing to write.
		switch {
		case strings.Contains(stdout, "infeasible"):
			sol.Status = ilp.Infeasible
		case strings.Contains(stdout, "time limit"):
			sol.Status = ilp.TimeLimit
		default:
			return nil, errors.Wrapf(ErrSolverFailed, "%s: no solution file: %s", CplexName, tail(out))
		}
		sol.Message = "no solution file written"
		return sol, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read solution", CplexName)
	}
	if err := parseCplexSolution(raw, m, sol); err != nil {
		return nil, err
	}

	return sol, nil
}

func (c *Cplex) writeCommands(path, modelPath, solPath string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "%s: create command file", CplexName)
	}
	defer f.Close()

	fmt.Fprintln(f, "read", modelPath, "lp")
	if c.opts.TimeLimit > 0 {
		fmt.Fprintln(f, "set timelimit", c.opts.TimeLimit.Seconds())
	}
	if c.opts.Threads > 0 {
		fmt.Fprintln(f, "set threads", c.opts.Threads)
	}
	fmt.Fprintln(f, "optimize")
	fmt.Fprintln(f, "write", solPath, "sol")
	fmt.Fprintln(f, "quit")

	return errors.Wrapf(f.Sync(), "%s: write command file", CplexName)
}

// cplexSolution is the subset of the CPLEX XML solution format we read.
type cplexSolution struct {
	XMLName xml.Name `xml:"CPLEXSolution"`
	Header  struct {
		ObjectiveValue float64 `xml:"objectiveValue,attr"`
		StatusValue    int     `xml:"solutionStatusValue,attr"`
		StatusString   string  `xml:"solutionStatusString,attr"`
	} `xml:"header"`
	Variables []struct {
		Name  string  `xml:"name,attr"`
		Index int     `xml:"index,attr"`
		Value float64 `xml:"value,attr"`
	} `xml:"variables>variable"`
}

// cplexStatus maps CPLEX solution status codes onto ilp.Status and
// reports whether the file carries a usable assignment.
func cplexStatus(code int) (ilp.Status, bool) {
	switch code {
	case 1, 101, 102: // optimal, MIP optimal, optimal within tolerance
		return ilp.Optimal, true
	case 3, 103, 119: // infeasible, MIP infeasible, infeasible or unbounded
		return ilp.Infeasible, false
	case 11, 107, 113: // time limit / aborted with incumbent
		return ilp.TimeLimit, true
	case 108, 114: // time limit / aborted without incumbent
		return ilp.TimeLimit, false
	case 104, 105, 106, 109, 110, 111, 112: // other limits with incumbent
		return ilp.Feasible, true
	}

	return ilp.Unknown, false
}

func parseCplexSolution(raw []byte, m *ilp.Model, sol *ilp.Solution) error {
	var doc cplexSolution
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(ErrSolverFailed, "%s: parse solution: %v", CplexName, err)
	}
	status, hasValues := cplexStatus(doc.Header.StatusValue)
	sol.Status = status
	sol.Message = doc.Header.StatusString
	if !hasValues {
		return nil
	}

	values := make([]float64, len(m.Vars))
	seen := 0
	for _, v := range doc.Variables {
		idx, ok := m.Var(v.Name)
		if !ok {
			return errors.Wrapf(ErrSolverFailed, "%s: unknown variable %q in solution", CplexName, v.Name)
		}
		values[idx] = v.Value
		seen++
	}
	if seen == 0 {
		return errors.Wrapf(ErrSolverFailed, "%s: status %d but no variables", CplexName, doc.Header.StatusValue)
	}
	sol.Values = values
	sol.Objective = doc.Header.ObjectiveValue

	return nil
}
