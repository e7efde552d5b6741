// SPDX-License-Identifier: MIT
package graphbuilder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/arkforge/mibga/graph"
)

const minGridDim = 1

// ErrTooFewVertices indicates a Grid dimension or a RandomSparse vertex count
// smaller than minGridDim.
var ErrTooFewVertices = errors.New("graphbuilder: rows, cols and vertex count must each be >= 1")

// WeightFunc draws an edge weight from rng; Grid and RandomSparse call it
// once per edge.
type WeightFunc func(rng *rand.Rand) float64

// UnitWeight always returns 1, the default for an unweighted lattice.
func UnitWeight(*rand.Rand) float64 { return 1 }

// Grid builds a rows x cols orthogonal lattice with 4-neighborhood
// connectivity (right and bottom neighbors per cell). Node IDs are assigned
// row-major: Node(r*cols + c). Edge weights are drawn from weightFn, called
// once per edge in deterministic row-major, then right-before-bottom order.
func Grid(rows, cols int, weightFn WeightFunc, rng *rand.Rand) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("graphbuilder.Grid(rows=%d, cols=%d): %w", rows, cols, ErrTooFewVertices)
	}
	if weightFn == nil {
		weightFn = UnitWeight
	}

	g := graph.NewGraph()

	id := func(r, c int) graph.Node { return graph.Node(r*cols + c) }

	if rows == 1 && cols == 1 {
		g.AddNode(id(0, 0))
		return g, nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)

			if c+1 < cols {
				if err := g.AddEdge(u, id(r, c+1), weightFn(rng)); err != nil {
					return nil, fmt.Errorf("graphbuilder.Grid: %w", err)
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(u, id(r+1, c), weightFn(rng)); err != nil {
					return nil, fmt.Errorf("graphbuilder.Grid: %w", err)
				}
			}
		}
	}

	return g, nil
}
