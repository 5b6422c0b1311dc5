package workspace

import (
	"log/slog"

	"strided/pkg/matrix"
	"strided/pkg/stride"
	"strided/pkg/stridederrors"

	"github.com/pkg/errors"
	"github.com/zhangyunhao116/skipmap"
)

type buffers = skipmap.FuncMap[string, []float64]

// Workspace is a set of named flat buffers, kept in name order.
// It is safe for concurrent use; the buffers themselves are not.
type Workspace struct {
	buffers *buffers
}

func New() *Workspace {
	return &Workspace{
		buffers: skipmap.NewFunc[string, []float64](func(a, b string) bool {
			return a < b
		}),
	}
}

// Put registers data under name, replacing any previous buffer.
func (w *Workspace) Put(name string, data []float64) {
	w.buffers.Store(name, data)
	slog.Debug("buffer registered", "name", name, "len", len(data))
}

func (w *Workspace) Get(name string) ([]float64, error) {
	data, ok := w.buffers.Load(name)
	if !ok {
		return nil, errors.Wrapf(stridederrors.ErrNotFound, "buffer %q", name)
	}
	return data, nil
}

// Names returns the registered names in ascending order.
func (w *Workspace) Names() []string {
	names := make([]string, 0, w.buffers.Len())
	w.buffers.Range(func(name string, _ []float64) bool {
		names = append(names, name)
		return true
	})
	return names
}

func (w *Workspace) Len() int {
	return w.buffers.Len()
}

// Cursor returns a cursor over the named buffer at start with the given step.
func (w *Workspace) Cursor(name string, start, step int) (stride.Cursor[float64, stride.Dynamic], error) {
	data, err := w.Get(name)
	if err != nil {
		return stride.Cursor[float64, stride.Dynamic]{}, err
	}
	return stride.Dyn(data, start, step), nil
}

// Matrix views the named buffer as a rows×cols matrix.
func (w *Workspace) Matrix(name string, rows, cols int) (*matrix.Dense[float64], error) {
	data, err := w.Get(name)
	if err != nil {
		return nil, err
	}
	m, err := matrix.New(rows, cols, data)
	if err != nil {
		return nil, errors.Wrapf(err, "buffer %q", name)
	}
	return m, nil
}
