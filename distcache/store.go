// SPDX-License-Identifier: MIT
package distcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/tourplan/distmat"
)

// ErrNotPlanar is returned when a point has a dimensionality other than 2.
var ErrNotPlanar = errors.New("distcache: points must be 2-D")

const schema = `
CREATE TABLE IF NOT EXISTS distance_cache (
	ax   REAL NOT NULL,
	ay   REAL NOT NULL,
	bx   REAL NOT NULL,
	by   REAL NOT NULL,
	dist REAL NOT NULL,
	PRIMARY KEY (ax, ay, bx, by)
);`

// Store is a SQLite-backed pairwise distance cache. Safe for concurrent
// use; the underlying *sql.DB pools connections.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the cache database at path and applies
// the schema. path may be ":memory:" for an ephemeral cache.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("distcache: open %s: %w", path, err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err = db.Exec(pragma); err != nil {
			db.Close()

			return nil, fmt.Errorf("distcache: %s: %w", pragma, err)
		}
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("distcache: migrate: %w", err)
	}
	log.Printf("distcache: opened %s", path)

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Clear drops every cached pair.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM distance_cache;"); err != nil {
		return fmt.Errorf("distcache: clear: %w", err)
	}

	return nil
}

// Count reports the number of cached pairs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM distance_cache;").Scan(&n); err != nil {
		return 0, fmt.Errorf("distcache: count: %w", err)
	}

	return n, nil
}

// pairKey identifies a point pair after rounding and order normalization.
type pairKey struct {
	ax, ay, bx, by float64
}

// roundCoord snaps a coordinate to a 1e-5 grid so float noise in the
// input does not fragment the cache.
func roundCoord(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

// keyFor normalizes endpoint order so (p,q) and (q,p) share one row.
func keyFor(p, q distmat.Point) pairKey {
	ax, ay := roundCoord(p[0]), roundCoord(p[1])
	bx, by := roundCoord(q[0]), roundCoord(q[1])
	if ax > bx || (ax == bx && ay > by) {
		ax, ay, bx, by = bx, by, ax, ay
	}

	return pairKey{ax: ax, ay: ay, bx: bx, by: by}
}

// Matrix builds the full symmetric distance matrix for points, serving
// cached pairs from the table and computing the rest with distmat.Euclid.
// Freshly computed pairs are inserted back in one transaction, so a second
// call over the same points is all hits.
func (s *Store) Matrix(ctx context.Context, points []distmat.Point) (*distmat.Dense, error) {
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", ErrNotPlanar, i, len(p))
		}
	}

	n := len(points)
	D, err := distmat.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	sel, err := s.db.PrepareContext(ctx,
		"SELECT dist FROM distance_cache WHERE ax = ? AND ay = ? AND bx = ? AND by = ?;")
	if err != nil {
		return nil, fmt.Errorf("distcache: prepare lookup: %w", err)
	}
	defer sel.Close()

	type computed struct {
		key pairKey
		d   float64
	}
	var misses []computed
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			key := keyFor(points[i], points[j])
			var d float64
			err = sel.QueryRowContext(ctx, key.ax, key.ay, key.bx, key.by).Scan(&d)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				d = distmat.Round9(distmat.Euclid(points[i], points[j]))
				misses = append(misses, computed{key: key, d: d})
			case err != nil:
				return nil, fmt.Errorf("distcache: lookup: %w", err)
			}
			D.Set(i, j, d)
			D.Set(j, i, d)
		}
	}

	if len(misses) == 0 {
		return D, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("distcache: begin insert: %w", err)
	}
	ins, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO distance_cache (ax, ay, bx, by, dist) VALUES (?, ?, ?, ?, ?);")
	if err != nil {
		tx.Rollback()

		return nil, fmt.Errorf("distcache: prepare insert: %w", err)
	}
	for _, m := range misses {
		if _, err = ins.ExecContext(ctx, m.key.ax, m.key.ay, m.key.bx, m.key.by, m.d); err != nil {
			ins.Close()
			tx.Rollback()

			return nil, fmt.Errorf("distcache: insert: %w", err)
		}
	}
	ins.Close()
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("distcache: commit: %w", err)
	}

	return D, nil
}
