// Package distcache persists pairwise Euclidean distances in a SQLite
// file so repeated runs over the same settlement set skip recomputation.
//
// The cache keys a pair by both endpoints' coordinates rounded to 1e-5
// (about a metre at geographic scale), endpoint order normalized so the
// symmetric pair maps to one row. Matrix serves hits from the table,
// computes misses with distmat.Euclid and writes them back in a single
// transaction.
//
// Only 2-D points are cacheable; higher-dimensional inputs should go
// through distmat.Build directly.
package distcache
