package models

import "github.com/pkg/errors"

var (
	// ErrRagged reports a grid row whose length differs from the authoritative column count.
	ErrRagged = errors.New("ragged grid")
	// ErrLengthMismatch reports paired sequences of different lengths.
	ErrLengthMismatch = errors.New("paired sequence length mismatch")
	// ErrShape reports an explicit row/column/element count the backing data cannot satisfy.
	ErrShape = errors.New("shape exceeds backing data")
)

// Table is the addressable sequence of rows every writer consumes.
// Cols is the authoritative column count used for every row; RowLen reports
// how many cells row i can actually address, and is only consulted by Validate.
type Table interface {
	Rows() int
	Cols() int
	RowLen(i int) int
	Cell(i, j int) string
}

// Checker is implemented by tables with constraints beyond per-row length.
type Checker interface {
	Check() error
}

// Validate fails fast on shapes that would read out of range or be silently
// truncated.
func Validate(t Table) error {
	if c, ok := t.(Checker); ok {
		if err := c.Check(); err != nil {
			return err
		}
	}
	cols := t.Cols()
	for i := 0; i < t.Rows(); i++ {
		if n := t.RowLen(i); n != cols {
			return errors.Wrapf(ErrRagged, "row %d has %d columns, want %d", i, n, cols)
		}
	}
	return nil
}

// ─── Grids ──────────────────────────────────────────────────────────────

// Grid adapts a slice of rows. The first row's length is used for every row.
type Grid[T Number] struct {
	data [][]T
}

func NewGrid[T Number](m [][]T) *Grid[T] { return &Grid[T]{data: m} }

func (g *Grid[T]) Rows() int { return len(g.data) }

func (g *Grid[T]) Cols() int {
	if len(g.data) == 0 {
		return 0
	}
	return len(g.data[0])
}

func (g *Grid[T]) RowLen(i int) int     { return len(g.data[i]) }
func (g *Grid[T]) Cell(i, j int) string { return FormatValue(g.data[i][j]) }

// FixedGrid is a grid with caller-supplied row and column counts over a
// buffer addressed by two indices. Storage beyond the counts is ignored.
type FixedGrid[T Number] struct {
	rows, cols int
	data       [][]T
}

func NewFixedGrid[T Number](rows, cols int, m [][]T) *FixedGrid[T] {
	return &FixedGrid[T]{rows: rows, cols: cols, data: m}
}

func (g *FixedGrid[T]) Rows() int { return g.rows }
func (g *FixedGrid[T]) Cols() int { return g.cols }

func (g *FixedGrid[T]) RowLen(i int) int {
	if n := len(g.data[i]); n < g.cols {
		return n
	}
	return g.cols
}

func (g *FixedGrid[T]) Cell(i, j int) string { return FormatValue(g.data[i][j]) }

func (g *FixedGrid[T]) Check() error {
	if g.rows < 0 || g.cols < 0 {
		return errors.Wrapf(ErrShape, "negative dimensions %dx%d", g.rows, g.cols)
	}
	if g.rows > len(g.data) {
		return errors.Wrapf(ErrShape, "%d rows requested, buffer holds %d", g.rows, len(g.data))
	}
	return nil
}

// ─── Sequences ──────────────────────────────────────────────────────────

// Sequence is a one-column table, one element per row.
type Sequence[T Number] struct {
	n    int
	data []T
}

func NewSequence[T Number](s []T) *Sequence[T] { return &Sequence[T]{n: len(s), data: s} }

// NewSequenceN uses the first n elements of s.
func NewSequenceN[T Number](n int, s []T) *Sequence[T] { return &Sequence[T]{n: n, data: s} }

func (s *Sequence[T]) Rows() int            { return s.n }
func (s *Sequence[T]) Cols() int            { return 1 }
func (s *Sequence[T]) RowLen(int) int       { return 1 }
func (s *Sequence[T]) Cell(i, _ int) string { return FormatValue(s.data[i]) }

func (s *Sequence[T]) Check() error {
	if s.n < 0 || s.n > len(s.data) {
		return errors.Wrapf(ErrShape, "%d elements requested, buffer holds %d", s.n, len(s.data))
	}
	return nil
}

// Paired zips two sequences into two-column rows. The row count is taken
// from the first sequence.
type Paired[T Number] struct {
	a, b []T
}

func NewPaired[T Number](v1, v2 []T) *Paired[T] { return &Paired[T]{a: v1, b: v2} }

func (p *Paired[T]) Rows() int      { return len(p.a) }
func (p *Paired[T]) Cols() int      { return 2 }
func (p *Paired[T]) RowLen(int) int { return 2 }

func (p *Paired[T]) Cell(i, j int) string {
	if j == 0 {
		return FormatValue(p.a[i])
	}
	return FormatValue(p.b[i])
}

func (p *Paired[T]) Check() error {
	if len(p.a) != len(p.b) {
		return errors.Wrapf(ErrLengthMismatch, "first has %d elements, second has %d", len(p.a), len(p.b))
	}
	return nil
}

// Triples adapts fixed three-element groups, e.g. points or vectors in 3-space.
type Triples[T Number] struct {
	data [][3]T
}

func NewTriples[T Number](t [][3]T) *Triples[T] { return &Triples[T]{data: t} }

func (t *Triples[T]) Rows() int            { return len(t.data) }
func (t *Triples[T]) Cols() int            { return 3 }
func (t *Triples[T]) RowLen(int) int       { return 3 }
func (t *Triples[T]) Cell(i, j int) string { return FormatValue(t.data[i][j]) }
