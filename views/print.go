package views

import (
	"io"
	"strings"

	"print-utils/models"
)

// Fprint writes t to w as comma-joined rows, terminating every row
// including the last. Shapes are not validated.
func Fprint(w io.Writer, t models.Table) error {
	cw := newCSVWriter(w, TerminateEvery)
	if err := cw.WriteTable(t); err != nil {
		return err
	}
	return cw.Flush()
}

func PrintSequence[T models.Number](w io.Writer, s []T) error {
	return Fprint(w, models.NewSequence(s))
}

func PrintTriples[T models.Number](w io.Writer, t [][3]T) error {
	return Fprint(w, models.NewTriples(t))
}

func PrintGrid[T models.Number](w io.Writer, g [][]T) error {
	return Fprint(w, models.NewGrid(g))
}

func FormatSequence[T models.Number](s []T) string {
	return format(models.NewSequence(s))
}

func FormatTriples[T models.Number](t [][3]T) string {
	return format(models.NewTriples(t))
}

func FormatGrid[T models.Number](g [][]T) string {
	return format(models.NewGrid(g))
}

func format(t models.Table) string {
	var b strings.Builder
	_ = Fprint(&b, t) // strings.Builder never fails
	return b.String()
}
