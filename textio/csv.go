package textio

import (
	"encoding/csv"
	"io"
)

// NewReader wraps r in a CSV reader with a variable field count per row.
func NewReader(r io.Reader, comma rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// NewWriter wraps w in a CSV writer using the given delimiter.
func NewWriter(w io.Writer, comma rune) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	return cw
}

func readAll(path string, comma rune) ([][]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return NewReader(r, comma).ReadAll()
}

// ReadCSV reads a comma-separated file as a table.
func ReadCSV(path string) ([][]string, error) { return readAll(path, ',') }

// ReadTSV reads a tab-separated file as a table.
func ReadTSV(path string) ([][]string, error) { return readAll(path, '\t') }

func iterRows(path string, comma rune, fn func(row []string) error) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	cr := NewReader(r, comma)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

// IterCSV calls fn for each row of a comma-separated file.
func IterCSV(path string, fn func(row []string) error) error { return iterRows(path, ',', fn) }

// IterTSV calls fn for each row of a tab-separated file.
func IterTSV(path string, fn func(row []string) error) error { return iterRows(path, '\t', fn) }

func writeAll(path string, comma rune, rows [][]string) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	cw := NewWriter(w, comma)
	if err := cw.WriteAll(rows); err != nil {
		w.Close()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// WriteCSV writes rows to a comma-separated file.
func WriteCSV(path string, rows [][]string) error { return writeAll(path, ',', rows) }

// WriteTSV writes rows to a tab-separated file.
func WriteTSV(path string, rows [][]string) error { return writeAll(path, '\t', rows) }
