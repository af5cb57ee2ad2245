package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/softviz/internal/transform"
)

var ErrLengthMismatch = errors.New("export: values and result lengths differ")

// Report is the JSON form of one transform run.
type Report struct {
	Algorithm     string    `json:"algorithm"`
	Temperature   *float64  `json:"temperature,omitempty"`
	SubtractMax   bool      `json:"subtract_max"`
	Values        []float64 `json:"values"`
	Exponents     []float64 `json:"exponents"`
	Sum           float64   `json:"sum"`
	Probabilities []float64 `json:"probabilities"`
	Output        []float64 `json:"output"`
	Expectation   float64   `json:"expectation"`
	ArgMax        int       `json:"argmax"`
}

// NewReport pairs values with their result. Temperature is only recorded for
// softargmax.
func NewReport(values transform.Vector, cfg transform.Config, res *transform.Result) (*Report, error) {
	if res == nil || len(values) != res.Len() {
		return nil, ErrLengthMismatch
	}
	r := &Report{
		Algorithm:     cfg.Algorithm.String(),
		SubtractMax:   cfg.SubtractMax,
		Values:        nonNil(values),
		Exponents:     nonNil(res.Exponents),
		Sum:           res.Sum,
		Probabilities: nonNil(res.Probabilities),
		Output:        nonNil(res.Output),
		Expectation:   res.Expectation(),
		ArgMax:        res.ArgMax(),
	}
	if cfg.Algorithm == transform.Softargmax {
		t := cfg.Temperature
		r.Temperature = &t
	}
	return r, nil
}

func nonNil(v transform.Vector) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

func WriteJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// ExportJSON writes r to path, or to stdout when path is "-".
func ExportJSON(path string, r *Report) error {
	if path == "-" {
		return WriteJSON(os.Stdout, r)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteCSV writes one row per column: index, value, exponent, probability
// and output.
func WriteCSV(w io.Writer, values transform.Vector, res *transform.Result) error {
	if res == nil || len(values) != res.Len() {
		return ErrLengthMismatch
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "value", "exponent", "probability", "output"}); err != nil {
		return err
	}
	for i, v := range values {
		row := []string{
			strconv.Itoa(i),
			formatFloat(v),
			formatFloat(res.Exponents[i]),
			formatFloat(res.Probabilities[i]),
			formatFloat(res.Output[i]),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
