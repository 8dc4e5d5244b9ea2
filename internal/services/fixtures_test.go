package services

import (
	"context"
	"errors"
	"sync/atomic"

	"alfredoptarigan/hr-chatbot/internal/models"
)

func sampleCorpus() []models.Employee {
	return []models.Employee{
		{
			Name:            "Alice Johnson",
			Skills:          []string{"Python", "TensorFlow", "Machine Learning"},
			ExperienceYears: 6,
			Projects:        []string{"Medical Diagnosis Platform (healthcare)", "Patient Risk Prediction (healthcare)"},
			Availability:    "available",
			Gender:          "female",
		},
		{
			Name:            "Bob Smith",
			Skills:          []string{"React", "Node.js", "AWS"},
			ExperienceYears: 4,
			Projects:        []string{"E-commerce Platform", "Inventory Tracker (retail)"},
			Availability:    "available",
			Gender:          "male",
		},
		{
			Name:            "Carol Lee",
			Skills:          []string{"Python", "Django", "PostgreSQL"},
			ExperienceYears: 5,
			Projects:        []string{"Banking Portal (finance)"},
			Availability:    "on leave",
			Gender:          "female",
		},
		{
			Name:            "David Kim",
			Skills:          []string{"Kubernetes", "Docker", "AWS"},
			ExperienceYears: 7,
			Projects:        []string{"Cloud Migration"},
			Availability:    "available",
			Gender:          "male",
		},
	}
}

func employeeNames(employees []models.Employee) []string {
	names := make([]string, len(employees))
	for i, emp := range employees {
		names[i] = emp.Name
	}
	return names
}

// stubEncoder returns a fixed vector per text, all ones otherwise, and counts
// calls.
type stubEncoder struct {
	vectors map[string][]float32
	dim     int
	err     error
	calls   atomic.Int64
}

func (s *stubEncoder) Name() string { return "stub" }

func (s *stubEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, &EncodingError{Encoder: s.Name(), Cause: s.err}
	}
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	v := make([]float32, s.dim)
	for i := range v {
		v[i] = 1
	}
	return v, nil
}

// stubIndex returns canned neighbors.
type stubIndex struct {
	neighbors []Neighbor
	size      int
	err       error
	buildErr  error
}

func (s *stubIndex) Name() string { return "stub" }

func (s *stubIndex) Build(_ context.Context, embeddings [][]float32) error {
	if s.buildErr != nil {
		return s.buildErr
	}
	s.size = len(embeddings)
	return nil
}

func (s *stubIndex) Search(_ context.Context, _ []float32, _ int) ([]Neighbor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.neighbors, nil
}

func (s *stubIndex) Size() int { return s.size }

// countingEncoder wraps the TF-IDF encoder and counts Encode calls.
type countingEncoder struct {
	*TFIDFEncoder
	calls atomic.Int64
}

func newCountingEncoder() *countingEncoder {
	return &countingEncoder{TFIDFEncoder: NewTFIDFEncoder()}
}

func (c *countingEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	c.calls.Add(1)
	return c.TFIDFEncoder.Encode(ctx, text)
}

var errStub = errors.New("stub failure")
