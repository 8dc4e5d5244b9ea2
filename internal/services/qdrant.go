package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

const (
	qdrantUpsertBatch = 64
	qdrantTieSlack    = 8
)

// qdrantIndex keeps the corpus embeddings in a qdrant collection that is
// recreated on every Build. Point ids are corpus positions.
type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	size           int
	dimension      int
	built          bool
	log            *zap.Logger
}

func NewQdrantIndex(urlStr, apiKey, collectionName string, log *zap.Logger) (VectorIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &qdrantIndex{
		client:         client,
		collectionName: collectionName,
		log:            log,
	}, nil
}

func (q *qdrantIndex) Name() string { return "qdrant" }

// Build implements VectorIndex.
func (q *qdrantIndex) Build(ctx context.Context, embeddings [][]float32) error {
	if q.built {
		return fmt.Errorf("qdrant index already built")
	}

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		if err := q.client.DeleteCollection(ctx, q.collectionName); err != nil {
			return fmt.Errorf("failed to drop stale collection: %w", err)
		}
	}

	if len(embeddings) == 0 {
		q.built = true
		q.log.Warn("qdrant index built on an empty corpus", zap.String("collection", q.collectionName))
		return nil
	}

	dimension := len(embeddings[0])
	for i, v := range embeddings {
		if len(v) != dimension {
			return fmt.Errorf("embedding %d has %d dimensions, want %d: %w", i, len(v), dimension, ErrDimensionMismatch)
		}
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Euclid,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	for start := 0; start < len(embeddings); start += qdrantUpsertBatch {
		end := min(start+qdrantUpsertBatch, len(embeddings))
		points := make([]*qdrant.PointStruct, 0, end-start)
		for i := start; i < end; i++ {
			points = append(points, &qdrant.PointStruct{
				Id:      qdrant.NewIDNum(uint64(i)),
				Vectors: qdrant.NewVectors(embeddings[i]...),
			})
		}

		_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: q.collectionName,
			Points:         points,
			Wait:           qdrant.PtrOf(true),
		})
		if err != nil {
			return fmt.Errorf("failed to upsert points %d-%d: %w", start, end-1, err)
		}
	}

	q.size = len(embeddings)
	q.dimension = dimension
	q.built = true
	q.log.Info("qdrant collection built",
		zap.String("collection", q.collectionName),
		zap.Int("points", q.size),
		zap.Int("dimension", dimension))
	return nil
}

// Search implements VectorIndex.
func (q *qdrantIndex) Search(ctx context.Context, query []float32, k int) ([]Neighbor, error) {
	if !q.built {
		return nil, ErrIndexNotBuilt
	}
	if q.size == 0 || k <= 0 {
		return nil, nil
	}
	if len(query) != q.dimension {
		return nil, fmt.Errorf("query has %d dimensions, index has %d: %w", len(query), q.dimension, ErrDimensionMismatch)
	}

	return searchPaged(k, q.size, func(limit int) ([]*qdrant.ScoredPoint, error) {
		points, err := q.client.Query(ctx, &qdrant.QueryPoints{
			CollectionName: q.collectionName,
			Query:          qdrant.NewQuery(query...),
			Limit:          qdrant.PtrOf(uint64(limit)),
			WithPayload:    qdrant.NewWithPayload(false),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search: %w", err)
		}
		return points, nil
	})
}

// searchPaged fetches a page larger than k and widens it while the last hit
// still ties the k-th, so qdrant's own order never decides which tied point
// is dropped. The result is cut to k after sorting by (distance, index).
func searchPaged(k, size int, fetch func(limit int) ([]*qdrant.ScoredPoint, error)) ([]Neighbor, error) {
	k = min(k, size)
	limit := min(size, k+qdrantTieSlack)
	for {
		points, err := fetch(limit)
		if err != nil {
			return nil, err
		}
		neighbors := scoredNeighbors(points)
		if limit >= size || !tiedPastPage(neighbors, k, limit) {
			return neighbors[:min(k, len(neighbors))], nil
		}
		limit = min(size, limit*2)
	}
}

// scoredNeighbors converts qdrant hits into neighbors. Qdrant reports plain
// Euclidean distance; it is squared so both backends rank on the same scale.
func scoredNeighbors(points []*qdrant.ScoredPoint) []Neighbor {
	neighbors := make([]Neighbor, 0, len(points))
	for _, point := range points {
		d := point.GetScore()
		neighbors = append(neighbors, Neighbor{
			Index:    int(point.GetId().GetNum()),
			Distance: d * d,
		})
	}
	sortNeighbors(neighbors)
	return neighbors
}

// tiedPastPage reports whether a full page ends on the k-th distance, in which
// case more points with that distance may exist beyond the page.
func tiedPastPage(sorted []Neighbor, k, limit int) bool {
	if k <= 0 || len(sorted) < limit || len(sorted) < k {
		return false
	}
	return sorted[len(sorted)-1].Distance == sorted[k-1].Distance
}

func (q *qdrantIndex) Size() int { return q.size }
