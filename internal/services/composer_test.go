package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hr-chatbot/internal/models"
)

func TestNarrativeComposer_BuildIntro(t *testing.T) {
	c := NewNarrativeComposer(nil)

	tests := []struct {
		name  string
		count int
		attrs DetectedAttributes
		want  string
	}{
		{
			name:  "expertise and domain",
			count: 3,
			attrs: DetectedAttributes{Expertise: "AI", Domain: "healthcare"},
			want:  "Based on your requirements for AI expertise in healthcare, I found 3 excellent candidates:",
		},
		{
			name:  "expertise only",
			count: 1,
			attrs: DetectedAttributes{Expertise: "Machine Learning"},
			want:  "Based on your requirements for Machine Learning expertise, I found 1 excellent candidate:",
		},
		{
			name:  "domain only",
			count: 2,
			attrs: DetectedAttributes{Domain: "finance"},
			want:  "Based on your requirements in finance, I found 2 excellent candidates:",
		},
		{
			name:  "neither",
			count: 2,
			want:  "Based on your requirements, I found 2 excellent candidates:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.BuildIntro(tt.count, tt.attrs))
		})
	}
}

func TestNarrativeComposer_BuildCandidate(t *testing.T) {
	c := NewNarrativeComposer(nil)
	corpus := sampleCorpus()

	t.Run("first candidate", func(t *testing.T) {
		assert.Equal(t,
			"**Alice Johnson** would be perfect for this role. "+
				"She has 6 years of experience and is skilled in Python, TensorFlow, Machine Learning. "+
				"Her projects include: Medical Diagnosis Platform (healthcare), Patient Risk Prediction (healthcare). "+
				"She is currently available.",
			c.BuildCandidate(0, corpus[0]))
	})

	t.Run("subsequent candidate", func(t *testing.T) {
		assert.Equal(t,
			"**Bob Smith** is another strong candidate with 4 years of experience. "+
				"He knows React, Node.js, AWS and has worked on E-commerce Platform, Inventory Tracker (retail). "+
				"He is currently available.",
			c.BuildCandidate(1, corpus[1]))
	})

	t.Run("gender lookup is case insensitive", func(t *testing.T) {
		emp := corpus[3]
		emp.Gender = " Male "
		assert.Contains(t, c.BuildCandidate(0, emp), "His projects include")
	})

	t.Run("missing gender uses default pronouns", func(t *testing.T) {
		emp := corpus[3]
		emp.Gender = ""
		assert.Contains(t, c.BuildCandidate(2, emp), "She knows Kubernetes")
	})

	t.Run("bio replaces generated text", func(t *testing.T) {
		emp := corpus[2]
		emp.Bio = "Carol builds payment systems."
		assert.Equal(t, "Carol builds payment systems.", c.BuildCandidate(0, emp))
		assert.Equal(t, "Carol builds payment systems.", c.BuildCandidate(4, emp))
	})

	t.Run("blank bio is ignored", func(t *testing.T) {
		emp := corpus[2]
		emp.Bio = "   "
		assert.Contains(t, c.BuildCandidate(0, emp), "**Carol Lee** would be perfect")
	})
}

func TestNarrativeComposer_BuildClosing(t *testing.T) {
	c := NewNarrativeComposer(nil)
	tail := " the technical depth and domain expertise you need. " +
		"Would you like me to provide more details about their specific healthcare projects " +
		"or check their availability for meetings?"

	assert.Equal(t, "This candidate has"+tail, c.BuildClosing(1, "healthcare"))
	assert.Equal(t, "Both have"+tail, c.BuildClosing(2, "healthcare"))
	assert.Equal(t, "All of them have"+tail, c.BuildClosing(3, "healthcare"))
	assert.Equal(t, "All of them have"+tail, c.BuildClosing(7, "healthcare"))

	assert.Contains(t, c.BuildClosing(2, ""), "their specific projects projects")
}

func TestNarrativeComposer_Compose(t *testing.T) {
	c := NewNarrativeComposer(nil)

	t.Run("no employees", func(t *testing.T) {
		got := c.Compose(nil, DetectedAttributes{Expertise: "AI", Domain: "healthcare"})
		assert.Equal(t, &models.Narrative{
			Intro:      "",
			Candidates: []string{},
			Closing:    NoMatchMessage,
		}, got)
	})

	t.Run("one block per employee in rank order", func(t *testing.T) {
		corpus := sampleCorpus()
		got := c.Compose(corpus[:2], DetectedAttributes{Domain: "retail"})
		require.Len(t, got.Candidates, 2)
		assert.Equal(t, "Based on your requirements in retail, I found 2 excellent candidates:", got.Intro)
		assert.Contains(t, got.Candidates[0], "**Alice Johnson** would be perfect")
		assert.Contains(t, got.Candidates[1], "**Bob Smith** is another strong candidate")
		assert.Contains(t, got.Closing, "Both have")
		assert.Contains(t, got.Closing, "specific retail projects")
	})
}
