// Package dataio reads plot series from CSV and JSON sources.
package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/termplot/internal/numeric"
)

// ReadFile loads a series from path, dispatching on the file extension.
// ".json" parses as JSON; everything else as CSV. A nil x means the
// source carried only y values.
func ReadFile(path string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(f)
	}
	return ReadCSV(f)
}

// ReadCSV parses one series from CSV input: one column of y values, or
// two columns of x,y pairs. A non-numeric first record is treated as a
// header and skipped; non-numeric data fields fail with a wrapped
// numeric.ErrNotNumeric.
func ReadCSV(r io.Reader) (x, y []float64, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("dataio: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("dataio: empty csv input")
	}

	start := 0
	if _, convErr := strconv.ParseFloat(records[0][0], 64); convErr != nil {
		start = 1 // header row
	}
	if start >= len(records) {
		return nil, nil, fmt.Errorf("dataio: csv has a header but no data rows")
	}

	cols := len(records[start])
	if cols != 1 && cols != 2 {
		return nil, nil, fmt.Errorf("dataio: csv must have 1 or 2 columns, got %d", cols)
	}

	for i, rec := range records[start:] {
		if len(rec) != cols {
			return nil, nil, fmt.Errorf("dataio: csv row %d has %d fields, want %d", start+i+1, len(rec), cols)
		}
		vals := make([]float64, cols)
		for j, field := range rec {
			v, convErr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if convErr != nil {
				return nil, nil, fmt.Errorf("dataio: csv row %d field %d %q: %w",
					start+i+1, j+1, field, numeric.ErrNotNumeric)
			}
			vals[j] = v
		}
		if cols == 2 {
			x = append(x, vals[0])
			y = append(y, vals[1])
		} else {
			y = append(y, vals[0])
		}
	}
	return x, y, nil
}

// jsonSeries is the object form: {"x": [...], "y": [...]} with x optional.
type jsonSeries struct {
	X []interface{} `json:"x"`
	Y []interface{} `json:"y"`
}

// ReadJSON parses one series from JSON input: either an object with "y"
// (and optionally "x") arrays, or a bare array of numbers.
func ReadJSON(r io.Reader) (x, y []float64, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("dataio: read json: %w", err)
	}

	var series jsonSeries
	if err := json.Unmarshal(data, &series); err == nil && series.Y != nil {
		y, err = numeric.Values(series.Y)
		if err != nil {
			return nil, nil, fmt.Errorf("dataio: json y: %w", err)
		}
		if series.X == nil {
			return nil, y, nil
		}
		x, err = numeric.Values(series.X)
		if err != nil {
			return nil, nil, fmt.Errorf("dataio: json x: %w", err)
		}
		if len(x) != len(y) {
			return nil, nil, fmt.Errorf("dataio: json x and y lengths differ: %d vs %d", len(x), len(y))
		}
		return x, y, nil
	}

	var bare []interface{}
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, nil, fmt.Errorf("dataio: json is neither a series object nor an array: %w", err)
	}
	y, err = numeric.Values(bare)
	if err != nil {
		return nil, nil, fmt.Errorf("dataio: json values: %w", err)
	}
	return nil, y, nil
}
