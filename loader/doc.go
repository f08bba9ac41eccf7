// Package loader reads settlement tables from CSV files and extracts the
// id column and coordinate point set consumed by the solver.
//
// The core solver only checks rectangularity and dimensionality of the
// points it receives; semantic validation of the table (required columns,
// parseable coordinates) lives here, at the boundary.
//
// Files in the wild disagree on delimiters, so Load first tries the
// preferred delimiter (';' by default) and, when the required columns do
// not line up, falls back to detecting the delimiter from a sample of the
// first lines before giving up.
package loader
