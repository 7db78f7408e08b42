package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func cells(t Table) [][]string {
	out := make([][]string, t.Rows())
	for i := range out {
		for j := 0; j < t.Cols(); j++ {
			out[i] = append(out[i], t.Cell(i, j))
		}
	}
	return out
}

func TestGrid(t *testing.T) {
	g := NewGrid([][]int{{1, 2}, {3, 4}, {5, 6}})

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}, cells(g))
	assert.NoError(t, Validate(g))
}

func TestGrid_Empty(t *testing.T) {
	g := NewGrid[float64](nil)

	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
	assert.NoError(t, Validate(g))
}

func TestValidate_Ragged(t *testing.T) {
	err := Validate(NewGrid([][]int{{1, 2}, {3, 4, 5}}))

	require.ErrorIs(t, err, ErrRagged)
	assert.Contains(t, err.Error(), "row 1 has 3 columns, want 2")
}

func TestFixedGrid(t *testing.T) {
	m := [][]int{{1, 2, 3}, {4, 5, 6}}

	wide := NewFixedGrid(2, 2, m)
	assert.Equal(t, [][]string{{"1", "2"}, {"4", "5"}}, cells(wide))
	assert.NoError(t, Validate(wide))

	assert.ErrorIs(t, Validate(NewFixedGrid(3, 2, m)), ErrShape)
	assert.ErrorIs(t, Validate(NewFixedGrid(2, 4, m)), ErrRagged)
	assert.ErrorIs(t, Validate(NewFixedGrid(-1, 2, m)), ErrShape)
}

func TestSequence(t *testing.T) {
	s := NewSequence([]float64{1.5, 2})
	assert.Equal(t, [][]string{{"1.5"}, {"2"}}, cells(s))
	assert.NoError(t, Validate(s))

	head := NewSequenceN(1, []float64{1.5, 2})
	assert.Equal(t, [][]string{{"1.5"}}, cells(head))
	assert.NoError(t, Validate(head))

	assert.ErrorIs(t, Validate(NewSequenceN(3, []int{1, 2})), ErrShape)
}

func TestPaired(t *testing.T) {
	p := NewPaired([]int{1, 2}, []int{10, 20})
	assert.Equal(t, [][]string{{"1", "10"}, {"2", "20"}}, cells(p))
	assert.NoError(t, Validate(p))

	assert.ErrorIs(t, Validate(NewPaired([]int{1, 2}, []int{10})), ErrLengthMismatch)
	assert.ErrorIs(t, Validate(NewPaired([]int{1}, []int{10, 20})), ErrLengthMismatch)
}

func TestTriples(t *testing.T) {
	tr := NewTriples([][3]float32{{1, 2, 3}, {0.5, 0.25, -1}})
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"0.5", "0.25", "-1"}}, cells(tr))
	assert.NoError(t, Validate(tr))
}

func TestDense(t *testing.T) {
	d := NewDense(mat.NewDense(2, 2, []float64{1, 2.5, -3, 4}))

	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 2, d.Cols())
	assert.Equal(t, [][]string{{"1", "2.5"}, {"-3", "4"}}, cells(d))
	assert.NoError(t, Validate(d))
}

func TestDense_Transposed(t *testing.T) {
	d := NewDense(mat.NewDense(1, 3, []float64{1, 2, 3}).T())

	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, cells(d))
}
