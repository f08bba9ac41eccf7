// SPDX-License-Identifier: MIT
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/tourplan/distmat"
	"github.com/katalvlaran/tourplan/tsp"
)

// Conventional artifact file names used by the Save* helpers.
const (
	RouteFileName    = "route.csv"
	SolutionFileName = "solution.csv"
	MetaFileName     = "meta.json"
	WorkbookFileName = "solution.xlsx"
)

// ErrIDMismatch is returned when a route references an index beyond the
// supplied id table.
var ErrIDMismatch = errors.New("export: route index outside id table")

// label resolves a route position to its display form: the settlement id
// when a table is supplied, the bare index otherwise.
func label(i int, ids []string) (string, error) {
	if ids == nil {
		return strconv.Itoa(i), nil
	}
	if i < 0 || i >= len(ids) {
		return "", fmt.Errorf("%w: %d (ids: %d)", ErrIDMismatch, i, len(ids))
	}

	return ids[i], nil
}

// WriteRouteIDs writes the visiting order, one id per line. ids may be nil,
// in which case raw indices are written.
func WriteRouteIDs(w io.Writer, route []int, ids []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	for _, idx := range route {
		id, err := label(idx, ids)
		if err != nil {
			return err
		}
		if err = cw.Write([]string{id}); err != nil {
			return fmt.Errorf("export: write route: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteLegDistances writes one line per traversed leg, "from_id;distance",
// n-1 lines for a route of n stops. Distances come from D via
// tsp.EdgeLengths, so the file reflects the same rounded matrix the solver
// used.
func WriteLegDistances(w io.Writer, route []int, D *distmat.Dense, ids []string) error {
	legs, err := tsp.EdgeLengths(D, route)
	if err != nil {
		return fmt.Errorf("export: leg distances: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	for k, d := range legs {
		from, err := label(route[k], ids)
		if err != nil {
			return err
		}
		rec := []string{from, strconv.FormatFloat(d, 'f', -1, 64)}
		if err = cw.Write(rec); err != nil {
			return fmt.Errorf("export: write legs: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMeta writes run metadata as indented JSON.
func WriteMeta(w io.Writer, meta tsp.Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("export: write meta: %w", err)
	}

	return nil
}

// SaveAll writes route.csv, solution.csv and meta.json into dir, creating
// the directory if needed. The matrix is required for the per-leg file.
func SaveAll(dir string, res tsp.Result, D *distmat.Dense, ids []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	if err := saveFile(filepath.Join(dir, RouteFileName), func(w io.Writer) error {
		return WriteRouteIDs(w, res.Route, ids)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dir, SolutionFileName), func(w io.Writer) error {
		return WriteLegDistances(w, res.Route, D, ids)
	}); err != nil {
		return err
	}

	return saveFile(filepath.Join(dir, MetaFileName), func(w io.Writer) error {
		return WriteMeta(w, res.Meta)
	})
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}

	return nil
}
