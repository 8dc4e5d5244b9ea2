package services

import (
	"context"
	"fmt"
)

// memoryIndex is an exact flat index: every search scans all vectors.
type memoryIndex struct {
	dimension int
	vectors   [][]float32
	built     bool
}

func NewMemoryIndex() VectorIndex {
	return &memoryIndex{}
}

func (m *memoryIndex) Name() string { return "memory" }

// Build implements VectorIndex.
func (m *memoryIndex) Build(_ context.Context, embeddings [][]float32) error {
	if m.built {
		return fmt.Errorf("memory index already built")
	}

	dimension := 0
	if len(embeddings) > 0 {
		dimension = len(embeddings[0])
	}

	vectors := make([][]float32, len(embeddings))
	for i, v := range embeddings {
		if len(v) != dimension {
			return fmt.Errorf("embedding %d has %d dimensions, want %d: %w", i, len(v), dimension, ErrDimensionMismatch)
		}
		vectors[i] = append([]float32(nil), v...)
	}

	m.dimension = dimension
	m.vectors = vectors
	m.built = true
	return nil
}

// Search implements VectorIndex.
func (m *memoryIndex) Search(_ context.Context, query []float32, k int) ([]Neighbor, error) {
	if !m.built {
		return nil, ErrIndexNotBuilt
	}
	if len(m.vectors) == 0 || k <= 0 {
		return nil, nil
	}
	if len(query) != m.dimension {
		return nil, fmt.Errorf("query has %d dimensions, index has %d: %w", len(query), m.dimension, ErrDimensionMismatch)
	}

	neighbors := make([]Neighbor, len(m.vectors))
	for i, v := range m.vectors {
		neighbors[i] = Neighbor{Index: i, Distance: squaredL2(v, query)}
	}
	sortNeighbors(neighbors)

	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k], nil
}

func (m *memoryIndex) Size() int { return len(m.vectors) }
