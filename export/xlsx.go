// SPDX-License-Identifier: MIT
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tourplan/distmat"
	"github.com/katalvlaran/tourplan/tsp"
)

// sheet names inside the workbook.
const (
	sheetRoute = "Route"
	sheetLegs  = "Legs"
	sheetMeta  = "Meta"
)

// WriteWorkbook writes a single XLSX file with three sheets: the visiting
// order, the per-leg distances and the run metadata. ids behaves as in
// WriteRouteIDs.
func WriteWorkbook(path string, res tsp.Result, D *distmat.Dense, ids []string) error {
	legs, err := tsp.EdgeLengths(D, res.Route)
	if err != nil {
		return fmt.Errorf("export: workbook legs: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	routeIdx, err := f.NewSheet(sheetRoute)
	if err != nil {
		return fmt.Errorf("export: workbook: %w", err)
	}
	f.SetCellValue(sheetRoute, "A1", "Order")
	f.SetCellValue(sheetRoute, "B1", "ID")
	for k, idx := range res.Route {
		id, lerr := label(idx, ids)
		if lerr != nil {
			return lerr
		}
		row := strconv.Itoa(k + 2)
		f.SetCellValue(sheetRoute, "A"+row, k+1)
		f.SetCellValue(sheetRoute, "B"+row, id)
	}
	f.SetColWidth(sheetRoute, "B", "B", 24)

	if _, err = f.NewSheet(sheetLegs); err != nil {
		return fmt.Errorf("export: workbook: %w", err)
	}
	f.SetCellValue(sheetLegs, "A1", "From")
	f.SetCellValue(sheetLegs, "B1", "To")
	f.SetCellValue(sheetLegs, "C1", "Distance")
	for k, d := range legs {
		from, lerr := label(res.Route[k], ids)
		if lerr != nil {
			return lerr
		}
		to, lerr := label(res.Route[k+1], ids)
		if lerr != nil {
			return lerr
		}
		row := strconv.Itoa(k + 2)
		f.SetCellValue(sheetLegs, "A"+row, from)
		f.SetCellValue(sheetLegs, "B"+row, to)
		f.SetCellValue(sheetLegs, "C"+row, d)
	}
	f.SetColWidth(sheetLegs, "A", "B", 24)

	if _, err = f.NewSheet(sheetMeta); err != nil {
		return fmt.Errorf("export: workbook: %w", err)
	}
	metaRows := [][2]interface{}{
		{"method", string(res.Meta.Method)},
		{"n", res.Meta.N},
		{"time_seconds", res.Meta.ElapsedSeconds},
		{"best_open_length", res.Meta.BestOpenLength},
		{"best_closed_length", res.Meta.BestClosedLength},
		{"start_idx", res.Meta.StartIndex},
	}
	for k, kv := range metaRows {
		row := strconv.Itoa(k + 1)
		f.SetCellValue(sheetMeta, "A"+row, kv[0])
		f.SetCellValue(sheetMeta, "B"+row, kv[1])
	}
	f.SetColWidth(sheetMeta, "A", "A", 20)

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(routeIdx)

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}

	return nil
}
