package services

import (
	"context"
	"sort"
)

// DefaultTopK is the neighbor count used for vector retrieval.
const DefaultTopK = 3

// Neighbor is one search hit: a corpus position and its squared Euclidean
// distance to the query.
type Neighbor struct {
	Index    int
	Distance float32
}

// VectorIndex holds one embedding per corpus position. Build is called once;
// the index is read-only afterwards and Search is safe for concurrent use.
type VectorIndex interface {
	Name() string
	Build(ctx context.Context, embeddings [][]float32) error
	Search(ctx context.Context, query []float32, k int) ([]Neighbor, error)
	Size() int
}

// sortNeighbors orders by ascending distance, then ascending corpus position.
func sortNeighbors(neighbors []Neighbor) {
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].Index < neighbors[j].Index
	})
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
