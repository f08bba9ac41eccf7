// Package export serializes solver results into the artifact files a run
// leaves behind: a route listing (route.csv), per-leg distances
// (solution.csv), run metadata (meta.json) and, optionally, a single XLSX
// workbook bundling all three.
//
// Writers take io.Writer so callers can target buffers or sockets; the
// Save* helpers wrap them with the conventional file names. The CSV
// artifacts use ';' as the separator, matching the settlements tables the
// loader package consumes.
package export
