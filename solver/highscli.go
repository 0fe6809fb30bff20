package solver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/ilp"
)

// HighsCLIName is the registry name of the HiGHS command-line backend.
const HighsCLIName = "highs-cli"

const highsBinary = "highs"

func init() {
	Register(HighsCLIName, NewHighsCLI)
}

// HighsCLI runs the HiGHS executable on an LP file and parses its text
// solution file.
type HighsCLI struct {
	opts ilp.Options
}

// NewHighsCLI is the Factory for the highs-cli backend.
func NewHighsCLI(opts ilp.Options) (ilp.Solver, error) {
	return &HighsCLI{opts: opts}, nil
}

// Name implements ilp.Solver.
func (h *HighsCLI) Name() string { return HighsCLIName }

// Solve implements ilp.Solver.
func (h *HighsCLI) Solve(ctx context.Context, m *ilp.Model) (*ilp.Solution, error) {
	start := time.Now()
	log := h.opts.Log().With(zap.String("backend", HighsCLIName))
	bin, err := lookBinary(HighsCLIName, highsBinary, h.opts.Binary)
	if err != nil {
		return nil, err
	}
	dir, cleanup, err := workspace(HighsCLIName, h.opts)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	modelPath, err := writeLPFile(HighsCLIName, dir, m)
	if err != nil {
		return nil, err
	}
	solPath := filepath.Join(dir, "model.sol")
	args := []string{"--model_file", modelPath, "--solution_file", solPath}
	if h.opts.TimeLimit > 0 {
		args = append(args, "--time_limit", strconv.FormatFloat(h.opts.TimeLimit.Seconds(), 'f', -1, 64))
	}
	if h.opts.Threads > 0 {
		optPath := filepath.Join(dir, "highs.opt")
		body := fmt.Sprintf("threads = %d\n", h.opts.Threads)
		if err := os.WriteFile(optPath, []byte(body), 0o644); err != nil {
			return nil, errors.Wrapf(err, "%s: write options file", HighsCLIName)
		}
		args = append(args, "--options_file", optPath)
	}

	out, runErr := run(ctx, log, HighsCLIName, dir, bin, args...)
	sol := &ilp.Solution{Backend: HighsCLIName, Runtime: time.Since(start)}
	if runErr != nil {
		if ctx.Err() != nil {
			sol.Status = ilp.TimeLimit
			sol.Message = ctx.Err().Error()
			return sol, nil
		}
		return nil, runErr
	}
	if h.opts.Verbose {
		log.Debug("highs output", zap.String("tail", tail(out)))
	}

	raw, err := os.ReadFile(solPath)
	if err != nil {
		return nil, errors.Wrapf(ErrSolverFailed, "%s: read solution: %v: %s", HighsCLIName, err, tail(out))
	}
	if err := parseHighsSolution(raw, m, sol); err != nil {
		return nil, err
	}

	return sol, nil
}

// highsStatus maps a HiGHS model status string onto ilp.Status.
func highsStatus(s string) ilp.Status {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "optimal":
		return ilp.Optimal
	case strings.Contains(s, "infeasible"):
		return ilp.Infeasible
	case strings.Contains(s, "time limit"):
		return ilp.TimeLimit
	case strings.Contains(s, "limit"), strings.Contains(s, "interrupt"):
		return ilp.Feasible
	}

	return ilp.Unknown
}

// parseHighsSolution reads the HiGHS "raw" solution format:
//
//	Model status
//	Optimal
//
//	# Primal solution values
//	Feasible
//	Objective 3
//	# Columns 4
//	x_0_1 1
//	...
//
// Older releases print "Model status: Optimal" on one line; both forms
// are accepted.
func parseHighsSolution(raw []byte, m *ilp.Model, sol *ilp.Solution) error {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var (
		statusText  string
		wantStatus  bool
		primalNone  bool
		inPrimal    bool
		colsLeft    int
		values      []float64
		haveObj     bool
		objective   float64
		primalValid bool
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case wantStatus && line != "":
			statusText, wantStatus = line, false
		case strings.HasPrefix(line, "Model status"):
			if i := strings.IndexByte(line, ':'); i >= 0 {
				statusText = strings.TrimSpace(line[i+1:])
			} else {
				wantStatus = true
			}
		case strings.HasPrefix(line, "# Primal solution values"):
			inPrimal = true
		case strings.HasPrefix(line, "# Dual solution values"), strings.HasPrefix(line, "# Rows"):
			inPrimal = false
			colsLeft = 0
		case inPrimal && colsLeft > 0:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return errors.Wrapf(ErrSolverFailed, "%s: bad column line %q", HighsCLIName, line)
			}
			idx, ok := m.Var(fields[0])
			if !ok {
				return errors.Wrapf(ErrSolverFailed, "%s: unknown variable %q in solution", HighsCLIName, fields[0])
			}
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return errors.Wrapf(ErrSolverFailed, "%s: bad value in %q", HighsCLIName, line)
			}
			values[idx] = v
			colsLeft--
		case inPrimal && line == "None":
			primalNone = true
		case inPrimal && line == "Feasible":
			primalValid = true
		case inPrimal && strings.HasPrefix(line, "Objective"):
			f := strings.Fields(line)
			if len(f) == 2 {
				if v, err := strconv.ParseFloat(f[1], 64); err == nil {
					objective, haveObj = v, true
				}
			}
		case inPrimal && strings.HasPrefix(line, "# Columns"):
			f := strings.Fields(line)
			n, err := strconv.Atoi(f[len(f)-1])
			if err != nil {
				return errors.Wrapf(ErrSolverFailed, "%s: bad column count %q", HighsCLIName, line)
			}
			colsLeft = n
			values = make([]float64, len(m.Vars))
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "%s: scan solution", HighsCLIName)
	}
	if statusText == "" {
		return errors.Wrapf(ErrSolverFailed, "%s: no model status in solution file", HighsCLIName)
	}

	sol.Status = highsStatus(statusText)
	sol.Message = statusText
	if primalNone || !primalValid || values == nil || sol.Status == ilp.Infeasible {
		return nil
	}
	sol.Values = values
	if haveObj {
		sol.Objective = objective
	} else {
		sol.Objective = m.Eval(values)
	}

	return nil
}
