package services

import (
	"sort"
	"testing"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredPoint(id uint64, score float32) *qdrant.ScoredPoint {
	return &qdrant.ScoredPoint{Id: qdrant.NewIDNum(id), Score: score}
}

// fakeQdrantFetch serves pages the way a server may: ascending score, but ties
// in descending id order.
func fakeQdrantFetch(scores []float32, limits *[]int) func(limit int) ([]*qdrant.ScoredPoint, error) {
	return func(limit int) ([]*qdrant.ScoredPoint, error) {
		*limits = append(*limits, limit)
		points := make([]*qdrant.ScoredPoint, len(scores))
		for i, s := range scores {
			points[i] = scoredPoint(uint64(i), s)
		}
		sort.Slice(points, func(i, j int) bool {
			if points[i].Score != points[j].Score {
				return points[i].Score < points[j].Score
			}
			return points[i].GetId().GetNum() > points[j].GetId().GetNum()
		})
		return points[:min(limit, len(points))], nil
	}
}

func uniformScores(n int, score float32) []float32 {
	scores := make([]float32, n)
	for i := range scores {
		scores[i] = score
	}
	return scores
}

func TestScoredNeighbors(t *testing.T) {
	got := scoredNeighbors([]*qdrant.ScoredPoint{
		scoredPoint(0, 2),
		scoredPoint(4, 1),
		scoredPoint(2, 0.5),
		scoredPoint(1, 1),
	})
	assert.Equal(t, []Neighbor{
		{Index: 2, Distance: 0.25},
		{Index: 1, Distance: 1},
		{Index: 4, Distance: 1},
		{Index: 0, Distance: 4},
	}, got)
}

func TestSearchPaged(t *testing.T) {
	tests := []struct {
		name       string
		scores     []float32
		k          int
		want       []int
		wantLimits []int
	}{
		{
			name:       "equidistant points keep lowest positions",
			scores:     uniformScores(4, 1),
			k:          3,
			want:       []int{0, 1, 2},
			wantLimits: []int{4},
		},
		{
			name:       "tie running past the first page widens it",
			scores:     uniformScores(12, 1),
			k:          3,
			want:       []int{0, 1, 2},
			wantLimits: []int{11, 12},
		},
		{
			name:       "no tie at the cutoff needs one page",
			scores:     []float32{3, 1, 2, 0.5, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5},
			k:          3,
			want:       []int{3, 1, 2},
			wantLimits: []int{11},
		},
		{
			name:       "k larger than the collection",
			scores:     []float32{2, 1},
			k:          5,
			want:       []int{1, 0},
			wantLimits: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var limits []int
			got, err := searchPaged(tt.k, len(tt.scores), fakeQdrantFetch(tt.scores, &limits))
			require.NoError(t, err)

			indices := make([]int, len(got))
			for i, n := range got {
				indices[i] = n.Index
			}
			assert.Equal(t, tt.want, indices)
			assert.Equal(t, tt.wantLimits, limits)
		})
	}
}

func TestSearchPaged_FetchError(t *testing.T) {
	_, err := searchPaged(3, 10, func(int) ([]*qdrant.ScoredPoint, error) {
		return nil, errStub
	})
	assert.ErrorIs(t, err, errStub)
}

func TestTiedPastPage(t *testing.T) {
	sorted := []Neighbor{{Index: 0, Distance: 1}, {Index: 1, Distance: 1}, {Index: 2, Distance: 1}}
	assert.True(t, tiedPastPage(sorted, 2, 3))
	assert.False(t, tiedPastPage(sorted, 2, 4), "short page means nothing was cut")
	assert.False(t, tiedPastPage([]Neighbor{{Distance: 1}, {Distance: 2}}, 1, 2))
}
