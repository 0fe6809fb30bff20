package solver

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/ilp"
)

// tailBytes bounds how much solver output is kept in error messages.
const tailBytes = 512

// lookBinary resolves the executable for a backend. override, when set,
// wins over the default name.
func lookBinary(backend, name, override string) (string, error) {
	if override != "" {
		name = override
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(ErrSolverNotInstalled, "%s: %q not found on PATH (%v)", backend, name, err)
	}

	return path, nil
}

// workspace returns the directory model files go to and a cleanup func.
// An explicit WorkDir is created if needed and left in place.
func workspace(backend string, opts ilp.Options) (string, func(), error) {
	if opts.WorkDir != "" {
		if err := os.MkdirAll(opts.WorkDir, 0o755); err != nil {
			return "", nil, errors.Wrapf(err, "%s: create work dir", backend)
		}
		return opts.WorkDir, func() {}, nil
	}
	dir, err := os.MkdirTemp("", "packcolor-"+backend+"-")
	if err != nil {
		return "", nil, errors.Wrapf(err, "%s: create temp dir", backend)
	}

	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

// writeLPFile writes m to dir/model.lp.
func writeLPFile(backend, dir string, m *ilp.Model) (string, error) {
	path := filepath.Join(dir, "model.lp")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "%s: create model file", backend)
	}
	if err := m.WriteLP(f); err != nil {
		_ = f.Close()
		return "", errors.Wrapf(err, "%s: write model file", backend)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "%s: close model file", backend)
	}

	return path, nil
}

// run executes bin under ctx in dir and returns combined output. A
// context expiry is returned as the context's error so callers can map
// it onto ilp.TimeLimit.
func run(ctx context.Context, log *zap.Logger, backend, dir, bin string, args ...string) ([]byte, error) {
	log.Debug("running solver", zap.String("backend", backend), zap.String("bin", bin), zap.Strings("args", args))
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out.Bytes(), ctxErr
	}
	if err != nil {
		return out.Bytes(), errors.Wrapf(ErrSolverFailed, "%s: %v: %s", backend, err, tail(out.Bytes()))
	}

	return out.Bytes(), nil
}

// tail returns the last tailBytes of b as a single trimmed line.
func tail(b []byte) string {
	if len(b) > tailBytes {
		b = b[len(b)-tailBytes:]
	}

	return strings.Join(strings.Fields(string(b)), " ")
}
