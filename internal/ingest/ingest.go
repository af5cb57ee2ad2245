// Package ingest reads value vectors from comma-separated text.
//
// The format is plain text: decimal numbers separated by commas, no header,
// no quoting. Line breaks start a new record and records are concatenated.
// A single bad field rejects the whole input.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/softviz/internal/transform"
)

// ParseError reports the first field that is not a finite decimal number.
type ParseError struct {
	Line  int
	Field int
	Text  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d field %d: %q is not a finite number", transform.ErrMalformedInput, e.Line, e.Field, e.Text)
}

func (e *ParseError) Unwrap() error {
	return transform.ErrMalformedInput
}

// Parse parses text into a vector. Nothing is returned on error.
func Parse(text string) (transform.Vector, error) {
	return Read(strings.NewReader(text))
}

func Read(r io.Reader) (transform.Vector, error) {
	cr := csv.NewReader(&quoteGuard{r: r, line: 1, field: 1})
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = false
	cr.ReuseRecord = true

	values := make(transform.Vector, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &ParseError{Line: perr.Line, Field: perr.Column, Text: perr.Err.Error()}
			}
			return nil, err
		}

		for i, field := range record {
			field = strings.TrimSpace(field)
			if field == "" && i == len(record)-1 && i > 0 {
				continue
			}
			v, err := parseField(field)
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, &ParseError{Line: line, Field: i + 1, Text: field}
			}
			values = append(values, v)
		}
	}

	return values, nil
}

// quoteGuard fails on the first double quote so quoted CSV fields never
// reach the parser.
type quoteGuard struct {
	r     io.Reader
	line  int
	field int
}

func (g *quoteGuard) Read(p []byte) (int, error) {
	n, err := g.r.Read(p)
	for i, b := range p[:n] {
		switch b {
		case '\n':
			g.line++
			g.field = 1
		case ',':
			g.field++
		case '"':
			return i, &ParseError{Line: g.line, Field: g.field, Text: `"`}
		}
	}
	return n, err
}

func parseField(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// ReadFile parses the values file at path.
func ReadFile(path string) (transform.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Resize returns a copy of v with length n. Existing values are kept and new
// slots are zero.
func Resize(v transform.Vector, n int) transform.Vector {
	if n < 0 {
		n = 0
	}
	out := make(transform.Vector, n)
	copy(out, v)
	return out
}

// Format renders v in the comma-separated form Parse accepts.
func Format(v transform.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
