package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"print-utils/models"
)

// CSVWriter encodes tables as comma-separated rows with "\n" terminators.
//
// Layering for files:
//
//	csv.Writer ─► lastLineWriter (OmitFinal only) ─► bufio.Writer ─► *os.File
//
// Stream writers skip the file and the extra bufio layer.
type CSVWriter struct {
	file   *os.File
	buf    *bufio.Writer
	csv    *csv.Writer
	record []string
	rows   uint64
}

// NewCSVWriter creates (or truncates) path.
func NewCSVWriter(path string, bufSizeBytes int, policy LinePolicy) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv create %s: %w", path, err)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 64 * 1024
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	w := newCSVWriter(bw, policy)
	w.file = f
	w.buf = bw
	return w, nil
}

func newCSVWriter(dst io.Writer, policy LinePolicy) *CSVWriter {
	if policy == OmitFinal {
		dst = &lastLineWriter{w: dst}
	}
	return &CSVWriter{csv: csv.NewWriter(dst)}
}

// WriteTable appends every row of t, using t.Cols() cells per row.
func (w *CSVWriter) WriteTable(t models.Table) error {
	rows, cols := t.Rows(), t.Cols()
	for i := 0; i < rows; i++ {
		w.record = w.record[:0]
		for j := 0; j < cols; j++ {
			w.record = append(w.record, t.Cell(i, j))
		}
		if err := w.csv.Write(w.record); err != nil {
			return err
		}
		w.rows++
	}
	return nil
}

// Flush pushes buffered rows to the underlying writer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	if w.buf != nil {
		return w.buf.Flush()
	}
	return nil
}

// Close flushes remaining data and closes the file. Calling it again is a no-op.
func (w *CSVWriter) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.Flush()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	w.file = nil
	return err
}

// Rows returns the number of rows encoded so far.
func (w *CSVWriter) Rows() uint64 {
	return w.rows
}

// lastLineWriter holds back a trailing '\n' until more bytes follow, so the
// final row is left unterminated.
type lastLineWriter struct {
	w       io.Writer
	pending bool
}

var newline = []byte{'\n'}

func (l *lastLineWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.pending {
		if _, err := l.w.Write(newline); err != nil {
			return 0, err
		}
		l.pending = false
	}
	body := p
	if p[len(p)-1] == '\n' {
		body = p[:len(p)-1]
		l.pending = true
	}
	if n, err := l.w.Write(body); err != nil {
		return n, err
	}
	return len(p), nil
}
