package workspace

import (
	"fmt"
	"sync"
	"testing"

	"strided/pkg/algo"
	"strided/pkg/stride"
	"strided/pkg/stridederrors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_PutGet(t *testing.T) {
	ws := New()
	ws.Put("b", []float64{1, 2, 3})
	ws.Put("a", []float64{4})
	ws.Put("b", []float64{5, 6})

	got, err := ws.Get("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, got)
	assert.Equal(t, 2, ws.Len())
	assert.Equal(t, []string{"a", "b"}, ws.Names())

	_, err = ws.Get("missing")
	assert.True(t, errors.Is(err, stridederrors.ErrNotFound))
}

func TestWorkspace_Cursor(t *testing.T) {
	ws := New()
	ws.Put("v", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	first, err := ws.Cursor("v", 0, 2)
	require.NoError(t, err)
	data, _ := ws.Get("v")
	last := stride.Dyn(data, len(data), 2)
	assert.Equal(t, 25.0, algo.Accumulate(first, last, 0.0))

	_, err = ws.Cursor("nope", 0, 1)
	assert.True(t, errors.Is(err, stridederrors.ErrNotFound))
}

func TestWorkspace_Matrix(t *testing.T) {
	ws := New()
	ws.Put("m", []float64{1, 2, 3, 4, 5, 6})

	m, err := ws.Matrix("m", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, m.At(1, 1))

	_, err = ws.Matrix("m", 4, 4)
	assert.True(t, errors.Is(err, stridederrors.ErrDimensionMismatch))
	assert.Contains(t, err.Error(), `buffer "m"`)

	_, err = ws.Matrix("x", 1, 1)
	assert.True(t, errors.Is(err, stridederrors.ErrNotFound))
}

func TestWorkspace_ConcurrentReaders(t *testing.T) {
	ws := New()
	data := make([]float64, 100)
	for i := range data {
		data[i] = 1
	}
	ws.Put("ones", data)

	var wg sync.WaitGroup
	sums := make([]float64, 8)
	for g := 0; g < len(sums); g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ws.Put(fmt.Sprintf("scratch-%d", g), make([]float64, g))
			first, err := ws.Cursor("ones", g, len(sums))
			if err != nil {
				return
			}
			for v := range first.Walk(stride.Dyn(data, len(data), len(sums))) {
				sums[g] += v
			}
		}(g)
	}
	wg.Wait()

	var total float64
	for _, s := range sums {
		total += s
	}
	assert.Equal(t, 100.0, total)
	assert.Equal(t, 9, ws.Len())
}
