package report

import (
	"fmt"
	"io"
	"strings"

	"kotoba/textio"
)

// Header levels. Level zero is the boxed document title; deeper levels
// indent further and shrink their rule.
const (
	H0 = iota
	H1
	H2
	H3
)

// TextReport writes a plain-text report to a writer, a file or an in-memory
// buffer.
type TextReport struct {
	w      io.Writer
	closer io.Closer
	buf    *strings.Builder
}

// NewTextReport writes to an arbitrary writer.
func NewTextReport(w io.Writer) *TextReport {
	return &TextReport{w: w}
}

// StringReport accumulates the report in memory; String returns it.
func StringReport() *TextReport {
	buf := &strings.Builder{}
	return &TextReport{w: buf, buf: buf}
}

// FileReport writes the report to path, gzip-compressed when the name ends
// in .gz. Close flushes and closes the file.
func FileReport(path string) (*TextReport, error) {
	w, err := textio.Create(path)
	if err != nil {
		return nil, err
	}
	return &TextReport{w: w, closer: w}, nil
}

// String returns the accumulated text of a StringReport, or empty for other
// report kinds.
func (r *TextReport) String() string {
	if r.buf == nil {
		return ""
	}
	return r.buf.String()
}

// Printf writes formatted text to the report.
func (r *TextReport) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Println writes its arguments followed by a newline.
func (r *TextReport) Println(args ...any) {
	fmt.Fprintln(r.w, args...)
}

// Header writes a section heading at the given level.
func (r *TextReport) Header(text string, level int) {
	switch {
	case level <= H0:
		rule := "+" + strings.Repeat("-", 78)
		r.Println(rule)
		r.Printf("| %s\n", text)
		r.Println(rule)
	case level == H1:
		r.Println()
		r.Println(text)
		r.Println(strings.Repeat("-", 60))
	case level == H2:
		r.Printf("\t%s\n", text)
		r.Printf("\t%s\n", strings.Repeat("-", 40))
	default:
		r.Printf("\t\t%s\n", text)
		r.Printf("\t\t%s\n", strings.Repeat("-", 20))
	}
}

// Close releases the underlying file, if any.
func (r *TextReport) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
