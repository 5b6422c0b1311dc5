package config

import (
	"strided/pkg/stridederrors"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var validate = validator.New()

// Ops a walk can perform.
const (
	OpCollect = "collect"
	OpSum     = "sum"
	OpFill    = "fill"
)

// Config is the root configuration of the stridewalk command.
type Config struct {
	Logger   LoggerConfig    `yaml:"logger"`
	Buffers  []BufferConfig  `yaml:"buffers" validate:"dive"`
	Walks    []WalkConfig    `yaml:"walks" validate:"dive"`
	Products []ProductConfig `yaml:"products" validate:"dive"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// BufferConfig declares a named buffer. Values wins over Len; Len alone
// allocates that many zeros.
type BufferConfig struct {
	Name   string    `yaml:"name" validate:"required"`
	Values []float64 `yaml:"values"`
	Len    int       `yaml:"len" validate:"min=0"`
}

// WalkConfig is one strided traversal over a buffer.
type WalkConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Buffer string `yaml:"buffer" validate:"required"`
	Start  int    `yaml:"start"`
	// Stride defaults to 1 when omitted.
	Stride *int `yaml:"stride"`
	// Count bounds the walk to that many elements. Without it the walk runs to
	// the edge of the buffer in the direction of the stride.
	Count *int    `yaml:"count" validate:"omitempty,min=0"`
	Op    string  `yaml:"op" validate:"required,oneof=collect sum fill"`
	Value float64 `yaml:"value"`
}

// Step returns the configured stride or 1.
func (w WalkConfig) Step() int {
	if w.Stride == nil {
		return 1
	}
	return *w.Stride
}

// ProductConfig multiplies two buffers viewed as matrices and stores the
// result as a new buffer called Name.
type ProductConfig struct {
	Name string    `yaml:"name" validate:"required"`
	A    MatrixRef `yaml:"a"`
	B    MatrixRef `yaml:"b"`
}

type MatrixRef struct {
	Buffer string `yaml:"buffer" validate:"required"`
	Rows   int    `yaml:"rows" validate:"min=0"`
	Cols   int    `yaml:"cols" validate:"min=0"`
}

// Default returns a baseline development config.
func Default() Config {
	two, three := 2, 3
	return Config{
		Logger: LoggerConfig{
			Level: "DEBUG",
			JSON:  false,
		},
		Buffers: []BufferConfig{
			{Name: "v", Values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
			{Name: "a", Values: []float64{2, 1, 4, 0, 1, 1}},
			{Name: "b", Values: []float64{6, 3, -1, 0, 1, 1, 0, 4, -2, 5, 0, 2}},
			{Name: "z", Len: 10},
		},
		Walks: []WalkConfig{
			{Name: "odd", Buffer: "v", Stride: &two, Op: OpCollect},
			{Name: "odd-sum", Buffer: "v", Stride: &two, Op: OpSum},
			{Name: "every-third", Buffer: "z", Start: 1, Stride: &three, Op: OpFill, Value: 1},
		},
		Products: []ProductConfig{
			{Name: "ab", A: MatrixRef{Buffer: "a", Rows: 2, Cols: 3}, B: MatrixRef{Buffer: "b", Rows: 3, Cols: 4}},
		},
	}
}

// Parse decodes YAML into a Config and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the validate tags, then the references between sections.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &validationError{err: err}
	}

	buffers := make(map[string]bool, len(c.Buffers)+len(c.Products))
	for _, b := range c.Buffers {
		if buffers[b.Name] {
			return invalid("duplicate buffer %q", b.Name)
		}
		buffers[b.Name] = true
	}

	for _, p := range c.Products {
		for _, ref := range []MatrixRef{p.A, p.B} {
			if !buffers[ref.Buffer] {
				return invalid("product %q: unknown buffer %q", p.Name, ref.Buffer)
			}
		}
		if p.A.Cols != p.B.Rows {
			return errors.Wrapf(stridederrors.ErrDimensionMismatch, "product %q: %dx%d times %dx%d",
				p.Name, p.A.Rows, p.A.Cols, p.B.Rows, p.B.Cols)
		}
		if buffers[p.Name] {
			return invalid("product %q shadows a buffer", p.Name)
		}
		buffers[p.Name] = true
	}

	for _, w := range c.Walks {
		if !buffers[w.Buffer] {
			return invalid("walk %q: unknown buffer %q", w.Name, w.Buffer)
		}
		if w.Step() == 0 && w.Count == nil {
			return invalid("walk %q: zero stride needs a count", w.Name)
		}
	}
	return nil
}

// validationError keeps the validator's field errors reachable with
// errors.As while matching ErrInvalidArgument with errors.Is.
type validationError struct {
	err error
}

func (e *validationError) Error() string {
	return stridederrors.ErrInvalidArgument.Error() + ": " + e.err.Error()
}

func (e *validationError) Unwrap() error { return e.err }

func (e *validationError) Is(target error) bool { return target == stridederrors.ErrInvalidArgument }

func invalid(format string, args ...any) error {
	return errors.Wrapf(stridederrors.ErrInvalidArgument, format, args...)
}
