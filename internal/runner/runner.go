package runner

import (
	"context"
	"log/slog"
	"slices"

	"strided/pkg/config"
	"strided/pkg/matrix"
	"strided/pkg/stride"
	"strided/pkg/stridederrors"

	"github.com/pkg/errors"
)

type iWorkspace interface {
	Put(name string, data []float64)
	Get(name string) ([]float64, error)
	Cursor(name string, start, step int) (stride.Cursor[float64, stride.Dynamic], error)
	Matrix(name string, rows, cols int) (*matrix.Dense[float64], error)
}

// Result is the outcome of one walk.
type Result struct {
	Name    string
	Op      string
	Visited int
	Values  []float64
	Sum     float64
}

// Runner executes the buffers, products and walks of a config against a workspace.
type Runner struct {
	ws  iWorkspace
	log *slog.Logger
}

func New(ws iWorkspace, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{ws: ws, log: log}
}

// Run loads every buffer, computes every product and then performs every
// walk, in config order. It stops at the first error or when ctx is done.
func (r *Runner) Run(ctx context.Context, cfg config.Config) ([]Result, error) {
	for _, b := range cfg.Buffers {
		r.Load(b)
	}

	for _, p := range cfg.Products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.Product(p); err != nil {
			return nil, err
		}
	}

	results := make([]Result, 0, len(cfg.Walks))
	for _, w := range cfg.Walks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.Walk(w)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Load registers a copy of a configured buffer, so walks never write into
// the config.
func (r *Runner) Load(b config.BufferConfig) {
	data := slices.Clone(b.Values)
	if len(data) == 0 {
		data = make([]float64, b.Len)
	}
	r.ws.Put(b.Name, data)
}

// Product multiplies the two referenced matrices and registers the result.
func (r *Runner) Product(p config.ProductConfig) error {
	a, err := r.ws.Matrix(p.A.Buffer, p.A.Rows, p.A.Cols)
	if err != nil {
		return errors.Wrapf(err, "product %q", p.Name)
	}
	b, err := r.ws.Matrix(p.B.Buffer, p.B.Rows, p.B.Cols)
	if err != nil {
		return errors.Wrapf(err, "product %q", p.Name)
	}
	m, err := matrix.Mul(a, b)
	if err != nil {
		return errors.Wrapf(err, "product %q", p.Name)
	}
	r.ws.Put(p.Name, m.Data())
	r.log.Info("product computed", "name", p.Name, "rows", m.Rows(), "cols", m.Cols())
	return nil
}

// Walk performs one strided traversal. A walk with a count visits exactly
// that many elements; without one it runs to the edge of the buffer in the
// direction of the stride.
func (r *Runner) Walk(w config.WalkConfig) (Result, error) {
	step := w.Step()
	first, err := r.ws.Cursor(w.Buffer, w.Start, step)
	if err != nil {
		return Result{}, errors.Wrapf(err, "walk %q", w.Name)
	}
	count, err := span(w, len(first.Buffer()))
	if err != nil {
		return Result{}, err
	}

	res := Result{Name: w.Name, Op: w.Op}
	for it, i := first, 0; i < count; it, i = it.Next(), i+1 {
		res.Visited++
		switch w.Op {
		case config.OpCollect:
			res.Values = append(res.Values, it.Get())
		case config.OpSum:
			res.Sum += it.Get()
		case config.OpFill:
			it.Set(w.Value)
		}
	}

	r.log.Info("walk finished", "name", w.Name, "op", w.Op, "stride", step, "visited", res.Visited)
	return res, nil
}

// span returns how many elements w visits in a buffer of n elements. A walk
// without a count runs to the edge of the buffer in the direction of its
// stride. Walks that would index outside the buffer are rejected. Reach is
// computed by division so that large counts or strides cannot wrap.
func span(w config.WalkConfig, n int) (int, error) {
	if w.Count != nil {
		if *w.Count < 0 {
			return 0, errors.Wrapf(stridederrors.ErrInvalidArgument, "walk %q: negative count %d", w.Name, *w.Count)
		}
		if *w.Count == 0 {
			return 0, nil
		}
	}
	if w.Start < 0 || w.Start >= n {
		return 0, errors.Wrapf(stridederrors.ErrInvalidArgument, "walk %q: start %d outside buffer of %d", w.Name, w.Start, n)
	}

	// further elements reachable after Start
	var reach int
	switch step := w.Step(); {
	case step > 0:
		reach = (n - 1 - w.Start) / step
	case step < 0:
		reach = w.Start / -step
	default:
		if w.Count == nil {
			return 0, errors.Wrapf(stridederrors.ErrInvalidArgument, "walk %q: zero stride needs a count", w.Name)
		}
		return *w.Count, nil
	}

	if w.Count == nil {
		return reach + 1, nil
	}
	if *w.Count-1 > reach {
		return 0, errors.Wrapf(stridederrors.ErrInvalidArgument, "walk %q: %d elements at stride %d from %d overrun buffer of %d",
			w.Name, *w.Count, w.Step(), w.Start, n)
	}
	return *w.Count, nil
}
