package services

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrIndexNotBuilt     = errors.New("vector index not built")
	ErrEncoderRequired   = errors.New("encoder is required")
	ErrIndexRequired     = errors.New("vector index is required")
)

// CorpusLoadError reports a missing or malformed corpus source. Callers recover
// from it by serving an empty corpus.
type CorpusLoadError struct {
	Source string
	Cause  error
}

func (e *CorpusLoadError) Error() string {
	return fmt.Sprintf("failed to load corpus from %s: %v", e.Source, e.Cause)
}

func (e *CorpusLoadError) Unwrap() error {
	return e.Cause
}

// EncodingError reports an encoder failure on a piece of text.
type EncodingError struct {
	Encoder string
	Cause   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s encoder failed: %v", e.Encoder, e.Cause)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}
