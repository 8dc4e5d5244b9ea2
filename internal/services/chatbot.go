package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/hr-chatbot/internal/config"
	"alfredoptarigan/hr-chatbot/internal/models"
)

type ChatbotService interface {
	Chat(ctx context.Context, query string) (*models.Narrative, error)
	SearchEmployees(query string) []models.Employee
	Stats() ServiceStats
}

type ServiceStats struct {
	CorpusSize int
	Encoder    string
	Index      string
}

// chatbotService owns the corpus, its embeddings and the index. Everything is
// built in NewChatbotService and only read afterwards, so requests share it
// without locking.
type chatbotService struct {
	corpus    []models.Employee
	encoder   Encoder
	index     VectorIndex
	retriever *HybridRetriever
	detector  *AttributeDetector
	composer  *NarrativeComposer
	log       *zap.Logger
}

type ChatbotOptions struct {
	Vocabulary       *config.Vocabulary
	EmbedConcurrency int
	Logger           *zap.Logger
}

// NewChatbotService embeds every employee once and builds the index. On error
// the caller is expected to retry with an empty corpus.
func NewChatbotService(ctx context.Context, corpus []models.Employee, encoder Encoder, index VectorIndex, opts ChatbotOptions) (ChatbotService, error) {
	if encoder == nil {
		return nil, ErrEncoderRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Vocabulary == nil {
		opts.Vocabulary = config.DefaultVocabulary()
	}

	corpus = slices.Clone(corpus)
	docs := buildDocuments(corpus)

	if p, ok := encoder.(CorpusPreparer); ok {
		if err := p.Prepare(docs); err != nil {
			return nil, fmt.Errorf("failed to prepare encoder: %w", err)
		}
	}

	start := time.Now()
	embeddings, err := embedDocuments(ctx, encoder, docs, opts.EmbedConcurrency)
	if err != nil {
		return nil, err
	}
	log.Info("corpus embedded",
		zap.Int("employees", len(corpus)),
		zap.String("encoder", encoder.Name()),
		zap.Duration("took", time.Since(start)))

	if err := index.Build(ctx, embeddings); err != nil {
		return nil, fmt.Errorf("failed to build %s index: %w", index.Name(), err)
	}
	log.Info("vector index ready", zap.String("index", index.Name()), zap.Int("size", index.Size()))

	matcher := NewExactMatcher(corpus)

	return &chatbotService{
		corpus:    corpus,
		encoder:   encoder,
		index:     index,
		retriever: NewHybridRetriever(corpus, matcher, encoder, index, log),
		detector:  NewAttributeDetector(opts.Vocabulary),
		composer:  NewNarrativeComposer(opts.Vocabulary),
		log:       log,
	}, nil
}

// embedDocuments encodes every document with bounded concurrency. Each
// goroutine writes only its own slot.
func embedDocuments(ctx context.Context, encoder Encoder, docs []string, concurrency int) ([][]float32, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	embeddings := make([][]float32, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			vec, err := encoder.Encode(gctx, doc)
			if err != nil {
				return fmt.Errorf("failed to embed employee %d: %w", i, err)
			}
			embeddings[i] = vec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return embeddings, nil
}

// Chat implements ChatbotService.
func (s *chatbotService) Chat(ctx context.Context, query string) (*models.Narrative, error) {
	result, err := s.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	attrs := s.detector.Detect(query, result.Employees)

	s.log.Debug("chat query resolved",
		zap.String("path", result.Path),
		zap.String("matched_skill", result.MatchedSkill),
		zap.Int("candidates", len(result.Employees)),
		zap.String("expertise", attrs.Expertise),
		zap.String("domain", attrs.Domain),
		zap.String("domain_source", attrs.DomainSource))

	return s.composer.Compose(result.Employees, attrs), nil
}

// SearchEmployees implements ChatbotService: case-insensitive substring match
// over name, skills and projects, in corpus order.
func (s *chatbotService) SearchEmployees(query string) []models.Employee {
	q := strings.ToLower(query)

	results := []models.Employee{}
	for _, emp := range s.corpus {
		if strings.Contains(strings.ToLower(emp.Name), q) ||
			containsFold(emp.Skills, q) ||
			containsFold(emp.Projects, q) {
			results = append(results, emp)
		}
	}
	return results
}

// Stats implements ChatbotService.
func (s *chatbotService) Stats() ServiceStats {
	return ServiceStats{
		CorpusSize: len(s.corpus),
		Encoder:    s.encoder.Name(),
		Index:      s.index.Name(),
	}
}

func containsFold(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerNeedle) {
			return true
		}
	}
	return false
}
