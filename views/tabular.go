package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"print-utils/models"
	"print-utils/utils"
)

// Mode selects how the writer treats bad input and I/O failures.
type Mode int

const (
	// Faithful never reports failures: an output path that cannot be opened
	// or written is logged and the call returns nil. Shapes are not checked,
	// so short rows panic with an index error and a longer second paired
	// sequence is truncated.
	Faithful Mode = iota
	// Hardened validates shapes before opening the file and returns every
	// I/O failure.
	Hardened
)

func (m Mode) String() string {
	if m == Hardened {
		return "hardened"
	}
	return "faithful"
}

// ParseMode maps "faithful" or "hardened" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "faithful":
		return Faithful, nil
	case "hardened":
		return Hardened, nil
	}
	return Faithful, errors.Errorf("unknown mode %q", s)
}

var (
	ErrOpen  = errors.New("open output")
	ErrWrite = errors.New("write output")
)

// Writer renders tables into <Dir>/<name>.csv, truncating existing files.
type Writer struct {
	Dir        string
	Mode       Mode
	BufferSize int
	Log        *utils.Logger // nil: utils.L()
}

// Default backs the package-level Write* helpers: faithful mode, paths
// relative to the working directory.
var Default = &Writer{}

// NewWriter builds a writer from config, creating the output directory.
func NewWriter(cfg *utils.Config) (*Writer, error) {
	mode, err := ParseMode(cfg.Output.Mode)
	if err != nil {
		return nil, err
	}
	dir := utils.OutputDir(cfg.Output.Dir, cfg.Output.SessionPrefix, time.Now())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{
		Dir:        dir,
		Mode:       mode,
		BufferSize: cfg.Output.BufferSizeKB * 1024,
	}, nil
}

// Path returns the file a base name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name+Extension)
}

// Write renders t to the file for name using the line policy of shape.
func (w *Writer) Write(shape Shape, t models.Table, name string) error {
	if w.Mode == Hardened {
		if err := models.Validate(t); err != nil {
			return errors.Wrapf(err, "%s %q", shape, name)
		}
	}

	path := w.Path(name)
	cw, err := NewCSVWriter(path, w.BufferSize, FilePolicy[shape])
	if err != nil {
		return w.fail(fmt.Errorf("%w: %w", ErrOpen, err))
	}
	defer cw.Close()

	if err := cw.WriteTable(t); err != nil {
		return w.fail(fmt.Errorf("%w: %s: %w", ErrWrite, path, err))
	}
	if err := cw.Close(); err != nil {
		return w.fail(fmt.Errorf("%w: %s: %w", ErrWrite, path, err))
	}

	w.logger().Debug("wrote %s  (shape=%s, rows=%d)", path, shape, cw.Rows())
	return nil
}

func (w *Writer) fail(err error) error {
	if w.Mode == Hardened {
		return err
	}
	w.logger().Warn("csv output dropped: %v", err)
	return nil
}

func (w *Writer) logger() *utils.Logger {
	if w.Log != nil {
		return w.Log
	}
	return utils.L()
}

// ─── Entry points ───────────────────────────────────────────────────────

// WriteGridN writes the first rows×cols cells of m, one terminated line per row.
func WriteGridN[T models.Number](rows, cols int, m [][]T, name string) error {
	return Default.Write(ShapeGrid, models.NewFixedGrid(rows, cols, m), name)
}

// WriteGrid writes m one terminated line per row; len(m[0]) sets the width.
func WriteGrid[T models.Number](m [][]T, name string) error {
	return Default.Write(ShapeGrid, models.NewGrid(m), name)
}

// WriteSequenceN writes the first n values of s one per line, without a
// terminator after the last.
func WriteSequenceN[T models.Number](n int, s []T, name string) error {
	return Default.Write(ShapeSequence, models.NewSequenceN(n, s), name)
}

// WriteSequence writes s one value per line, without a terminator after the last.
func WriteSequence[T models.Number](s []T, name string) error {
	return Default.Write(ShapeSequence, models.NewSequence(s), name)
}

// WritePaired writes "v1[i],v2[i]" lines, without a terminator after the last.
func WritePaired[T models.Number](v1, v2 []T, name string) error {
	return Default.Write(ShapePaired, models.NewPaired(v1, v2), name)
}

// WriteMatrix writes a gonum matrix in grid layout.
func WriteMatrix(m mat.Matrix, name string) error {
	return Default.Write(ShapeGrid, models.NewDense(m), name)
}
