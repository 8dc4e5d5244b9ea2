package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/models"
)

// Retrieval paths reported with every result.
const (
	PathExact  = "exact"
	PathVector = "vector"
	PathNone   = "none"
)

// RetrievalResult is the ranked list of employees for one query. The first
// entry is the best match.
type RetrievalResult struct {
	Employees    []models.Employee
	Path         string
	MatchedSkill string
}

// HybridRetriever tries an exact skill match first and falls back to vector
// search over the corpus embeddings.
type HybridRetriever struct {
	corpus  []models.Employee
	matcher *ExactMatcher
	encoder Encoder
	index   VectorIndex
	topK    int
	log     *zap.Logger
}

func NewHybridRetriever(corpus []models.Employee, matcher *ExactMatcher, encoder Encoder, index VectorIndex, log *zap.Logger) *HybridRetriever {
	if log == nil {
		log = zap.NewNop()
	}
	return &HybridRetriever{
		corpus:  corpus,
		matcher: matcher,
		encoder: encoder,
		index:   index,
		topK:    DefaultTopK,
		log:     log,
	}
}

// Retrieve resolves a raw query. An exact skill match returns every holder of
// the skill regardless of topK; otherwise up to topK nearest employees are
// returned in distance order.
func (r *HybridRetriever) Retrieve(ctx context.Context, query string) (*RetrievalResult, error) {
	normalized := normalizeQuery(query)

	if skill, positions, ok := r.matcher.Match(normalized); ok {
		employees := make([]models.Employee, 0, len(positions))
		for _, pos := range positions {
			employees = append(employees, r.corpus[pos])
		}
		r.log.Debug("exact skill match", zap.String("skill", skill), zap.Int("matches", len(employees)))
		return &RetrievalResult{Employees: employees, Path: PathExact, MatchedSkill: skill}, nil
	}

	if len(r.corpus) == 0 || r.index.Size() == 0 {
		return &RetrievalResult{Path: PathNone}, nil
	}

	vector, err := r.encoder.Encode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	var neighbors []Neighbor
	if isZeroVector(vector) {
		// no known terms: every profile ties, so corpus order decides
		neighbors = firstNeighbors(min(r.topK, len(r.corpus)))
	} else {
		neighbors, err = r.index.Search(ctx, vector, r.topK)
		if err != nil {
			return nil, fmt.Errorf("failed to search index: %w", err)
		}
	}

	employees := make([]models.Employee, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Index < 0 || n.Index >= len(r.corpus) {
			r.log.Warn("dropping neighbor outside corpus",
				zap.Int("index", n.Index),
				zap.Int("corpus_size", len(r.corpus)))
			continue
		}
		employees = append(employees, r.corpus[n.Index])
	}

	path := PathVector
	if len(employees) == 0 {
		path = PathNone
	}
	return &RetrievalResult{Employees: employees, Path: path}, nil
}

func isZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func firstNeighbors(n int) []Neighbor {
	neighbors := make([]Neighbor, n)
	for i := range neighbors {
		neighbors[i] = Neighbor{Index: i}
	}
	return neighbors
}
