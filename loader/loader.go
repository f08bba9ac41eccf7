// SPDX-License-Identifier: MIT
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourplan/distmat"
)

var (
	// ErrEmptyFile is returned when the input holds no records at all.
	ErrEmptyFile = errors.New("loader: empty file")
	// ErrMissingColumns is returned when one or more required columns are
	// absent from the header under every candidate delimiter.
	ErrMissingColumns = errors.New("loader: missing required columns")
	// ErrBadCoordinate is returned when a latitude or longitude cell does
	// not parse as a float.
	ErrBadCoordinate = errors.New("loader: bad coordinate")
)

// candidateDelims is the fallback detection set, tried in order.
var candidateDelims = []rune{',', ';', '\t', '|'}

// DefaultRequiredColumns is the header contract of a settlements table.
var DefaultRequiredColumns = []string{
	"id", "region", "municipality", "settlement", "type",
	"latitude_dd", "longitude_dd",
}

// Options tunes parsing of a settlements CSV.
type Options struct {
	// Delimiter is the preferred field separator; zero means ';'.
	Delimiter rune
	// RequiredColumns must all appear in the header; nil means
	// DefaultRequiredColumns.
	RequiredColumns []string
	// IDColumn, LatColumn and LonColumn name the extracted fields;
	// empty means "id", "latitude_dd", "longitude_dd".
	IDColumn  string
	LatColumn string
	LonColumn string
	// ConvertToDegrees divides raw coordinate values by 100, for tables
	// that store degrees scaled by a factor of 100.
	ConvertToDegrees bool
}

// DefaultOptions returns the settings for a standard settlements table.
func DefaultOptions() Options {
	return Options{Delimiter: ';'}
}

// Table is a parsed settlements CSV reduced to what the solver needs:
// one id and one 2-D point per row, in file order.
type Table struct {
	Header []string
	IDs    []string
	Points []distmat.Point
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.IDs) }

// Load reads and parses the CSV file at path. See Parse for the rules.
func Load(path string, opts Options) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	return Parse(data, opts)
}

// Parse parses raw CSV bytes into a Table.
//
// Stage 1: split with the preferred delimiter and check the header for the
// required columns. Stage 2 (only on a header mismatch): re-split with each
// candidate delimiter and keep the first that satisfies the header
// contract. Stage 3: extract ids and coordinates row by row.
func Parse(data []byte, opts Options) (*Table, error) {
	opts = withDefaults(opts)

	records, missing, err := parseWith(data, opts.Delimiter, opts.RequiredColumns)
	if errors.Is(err, ErrEmptyFile) {
		return nil, err
	}
	if err != nil || len(missing) > 0 {
		records, missing, err = detect(data, opts)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
		}
	}

	return extract(records, opts)
}

func withDefaults(opts Options) Options {
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	if opts.RequiredColumns == nil {
		opts.RequiredColumns = DefaultRequiredColumns
	}
	if opts.IDColumn == "" {
		opts.IDColumn = "id"
	}
	if opts.LatColumn == "" {
		opts.LatColumn = "latitude_dd"
	}
	if opts.LonColumn == "" {
		opts.LonColumn = "longitude_dd"
	}

	return opts
}

// parseWith splits data using delim and reports which required columns the
// resulting header lacks. A read error other than an empty input is fatal.
func parseWith(data []byte, delim rune, required []string) ([][]string, []string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("loader: parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyFile
	}

	idx := headerIndex(records[0])
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}

	return records, missing, nil
}

// detect retries every candidate delimiter and returns the first parse
// whose header satisfies the required-column contract. When none does, the
// candidate with the fewest missing columns wins so the caller can report
// a useful error.
func detect(data []byte, opts Options) ([][]string, []string, error) {
	var (
		bestRecords [][]string
		bestMissing []string
		lastErr     error
	)
	for _, delim := range candidateDelims {
		if delim == opts.Delimiter {
			continue
		}
		records, missing, err := parseWith(data, delim, opts.RequiredColumns)
		if err != nil {
			lastErr = err
			continue
		}
		if len(missing) == 0 {
			return records, nil, nil
		}
		if bestRecords == nil || len(missing) < len(bestMissing) {
			bestRecords, bestMissing = records, missing
		}
	}
	if bestRecords == nil {
		if lastErr != nil {
			return nil, nil, lastErr
		}

		return nil, nil, ErrEmptyFile
	}

	return bestRecords, bestMissing, nil
}

// headerIndex maps trimmed, lower-cased column names to positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return idx
}

func extract(records [][]string, opts Options) (*Table, error) {
	idx := headerIndex(records[0])
	idCol, latCol, lonCol := idx[opts.IDColumn], idx[opts.LatColumn], idx[opts.LonColumn]

	t := &Table{
		Header: records[0],
		IDs:    make([]string, 0, len(records)-1),
		Points: make([]distmat.Point, 0, len(records)-1),
	}
	for row, rec := range records[1:] {
		lat, err := parseCoord(rec[latCol])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, %s=%q", ErrBadCoordinate, row+2, opts.LatColumn, rec[latCol])
		}
		lon, err := parseCoord(rec[lonCol])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d, %s=%q", ErrBadCoordinate, row+2, opts.LonColumn, rec[lonCol])
		}
		if opts.ConvertToDegrees {
			lat /= 100
			lon /= 100
		}
		t.IDs = append(t.IDs, strings.TrimSpace(rec[idCol]))
		t.Points = append(t.Points, distmat.Point{lat, lon})
	}

	return t, nil
}

// parseCoord accepts both '.' and ',' as the decimal separator.
func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	return strconv.ParseFloat(s, 64)
}
