package services

import "context"

// Encoder maps free text to a fixed-dimension vector. Implementations must be
// safe for concurrent use once prepared.
type Encoder interface {
	Name() string
	Encode(ctx context.Context, text string) ([]float32, error)
}

// CorpusPreparer is implemented by encoders that derive their vector space from
// the corpus itself. Prepare is called once, before any Encode.
type CorpusPreparer interface {
	Prepare(corpus []string) error
}
