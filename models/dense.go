package models

import "gonum.org/v1/gonum/mat"

// Dense adapts a gonum matrix as a grid.
type Dense struct {
	m mat.Matrix
}

func NewDense(m mat.Matrix) *Dense { return &Dense{m: m} }

func (d *Dense) Rows() int {
	r, _ := d.m.Dims()
	return r
}

func (d *Dense) Cols() int {
	_, c := d.m.Dims()
	return c
}

func (d *Dense) RowLen(int) int       { return d.Cols() }
func (d *Dense) Cell(i, j int) string { return FormatValue(d.m.At(i, j)) }
