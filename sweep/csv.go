package sweep

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Header is the first line of the CSV output
var Header = []string{"N", "Narrow_Area", "Wide_Area"}

// Precision is the number of digits written after the decimal point
const Precision = 10

// CSVWriter writes rows as N,Narrow_Area,Wide_Area lines
type CSVWriter struct {
	buf    *bufio.Writer
	out    *csv.Writer
	header bool
}

// NewCSVWriter returns a CSVWriter on w. The header is written with the
// first row, or on Flush if there are no rows.
func NewCSVWriter(w io.Writer) *CSVWriter {
	buf := bufio.NewWriter(w)
	return &CSVWriter{buf: buf, out: csv.NewWriter(buf)}
}

func (cw *CSVWriter) writeHeader() error {
	if cw.header {
		return nil
	}
	cw.header = true
	return errors.Wrap(cw.out.Write(Header), "can't write header")
}

// WriteRow implements RowWriter
func (cw *CSVWriter) WriteRow(r Row) error {
	if err := cw.writeHeader(); err != nil {
		return err
	}
	rec := []string{
		strconv.FormatInt(r.N, 10),
		strconv.FormatFloat(r.Narrow, 'f', Precision, 64),
		strconv.FormatFloat(r.Wide, 'f', Precision, 64),
	}
	return errors.Wrap(cw.out.Write(rec), "can't write row")
}

// Flush writes any buffered data to the underlying writer
func (cw *CSVWriter) Flush() error {
	if err := cw.writeHeader(); err != nil {
		return err
	}

	// ordering is important here
	cw.out.Flush()
	if err := cw.out.Error(); err != nil {
		return errors.Wrap(err, "can't flush csv")
	}
	return errors.Wrap(cw.buf.Flush(), "can't flush output")
}

// MultiWriter returns a RowWriter that writes each row to every w in order,
// stopping at the first error.
func MultiWriter(ws ...RowWriter) RowWriter {
	return multiWriter(ws)
}

type multiWriter []RowWriter

func (mw multiWriter) WriteRow(r Row) error {
	for _, w := range mw {
		if err := w.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}
