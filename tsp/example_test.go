// Package tsp_test - runnable documentation examples.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tourplan/distmat"
	"github.com/katalvlaran/tourplan/tsp"
)

// ExampleSolve runs the full pipeline on the unit square: construction
// already finds the boundary walk, so 2-opt has nothing left to improve.
func ExampleSolve() {
	points := []distmat.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	opts := tsp.DefaultOptions()
	opts.Start = 0

	res, err := tsp.Solve(tsp.Input{Points: points}, opts)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("route:", res.Route)
	fmt.Printf("open: %.1f closed: %.1f\n", res.Meta.BestOpenLength, res.Meta.BestClosedLength)
	// Output:
	// route: [0 1 2 3]
	// open: 3.0 closed: 4.0
}

// ExampleNearestNeighbor shows greedy construction alone; ties resolve to
// the lowest index, so repeated runs always agree.
func ExampleNearestNeighbor() {
	D, err := distmat.Build([]distmat.Point{{0, 0}, {3, 0}, {1, 0}})
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	route, err := tsp.NearestNeighbor(D, 0)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}

	fmt.Println(route)
	// Output:
	// [0 2 1]
}

// ExampleTwoOpt untangles a deliberately crossed square tour with a single
// segment reversal.
func ExampleTwoOpt() {
	D, err := distmat.Build([]distmat.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	route, open, err := tsp.TwoOpt(D, []int{0, 2, 1, 3}, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("optimization failed:", err)
		return
	}

	fmt.Println("route:", route)
	fmt.Printf("open: %.1f\n", open)
	// Output:
	// route: [0 1 2 3]
	// open: 3.0
}

// ExampleProgressFunc streams a snapshot for every accepted move.
func ExampleProgressFunc() {
	D, err := distmat.Build([]distmat.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	opts := tsp.DefaultOptions()
	opts.Sink = tsp.ProgressFunc(func(p tsp.Progress) {
		fmt.Printf("closed=%.1f\n", p.ClosedLength)
	})

	if _, _, err = tsp.TwoOpt(D, []int{0, 2, 1, 3}, opts); err != nil {
		fmt.Println("optimization failed:", err)
	}
	// Output:
	// closed=4.0
}
