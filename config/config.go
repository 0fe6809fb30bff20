package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSrc string

// ErrInvalid wraps every configuration error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config drives a run. Field tags match schema.cue.
type Config struct {
	PStart       int    `json:"p_start"`
	PEnd         int    `json:"p_end"`
	B            int    `json:"b"`
	K            int    `json:"k"`
	Topology     string `json:"topology"`
	Solver       string `json:"solver"`
	Bound        string `json:"bound"`
	StopAbove    int    `json:"stop_above"`
	OutDir       string `json:"out_dir"`
	CacheDir     string `json:"cache_dir"`
	TimeLimit    string `json:"time_limit"`
	Threads      int    `json:"threads"`
	Workers      int    `json:"workers"`
	SolverBinary string `json:"solver_binary"`
	Render       bool   `json:"render"`
	DOT          bool   `json:"dot"`
	LP           bool   `json:"lp"`
	MetricsFile  string `json:"metrics_file"`
}

// Default returns the schema defaults.
func Default() *Config {
	cfg, err := Parse("defaults.cue", nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded schema: %v", err))
	}

	return cfg
}

// Load reads a .cue or .json file and applies it over the defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(path, raw)
}

// Parse unifies src (CUE or JSON; filename is used in messages) with the
// schema, requires a concrete result and decodes it.
func Parse(filename string, src []byte) (*Config, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("config: schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := def
	if len(src) > 0 {
		user := ctx.CompileBytes(src, cue.Filename(filename))
		if err := user.Err(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, filename, err)
		}
		v = def.Unify(user)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, filename, err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks what the schema cannot express.
func (c *Config) Validate() error {
	if c.PEnd != 0 && c.PEnd < c.PStart {
		return fmt.Errorf("%w: p_end %d < p_start %d", ErrInvalid, c.PEnd, c.PStart)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	return nil
}

// Timeout parses TimeLimit; 0 means no limit.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.TimeLimit)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: time_limit %q", ErrInvalid, c.TimeLimit)
	}

	return d, nil
}
