package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hr-chatbot/internal/models"
)

func TestFirstParagraph(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     string
	}{
		{
			name:     "first non blank paragraph",
			text:     "\n\n  Alice   Johnson\nML engineer  \n\nSecond paragraph",
			maxChars: 100,
			want:     "Alice Johnson ML engineer",
		},
		{
			name:     "windows line endings",
			text:     "Intro line\r\n\r\nNext",
			maxChars: 100,
			want:     "Intro line",
		},
		{
			name:     "cut on word boundary",
			text:     "one two three four",
			maxChars: 10,
			want:     "one two...",
		},
		{
			name:     "no limit",
			text:     "one two three four",
			maxChars: 0,
			want:     "one two three four",
		},
		{
			name: "blank text",
			text: " \n\n \n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstParagraph(tt.text, tt.maxChars))
		})
	}
}

func TestResumePath(t *testing.T) {
	assert.Equal(t, filepath.Join("resumes", "alice_johnson.pdf"), ResumePath("resumes", "Alice Johnson"))
	assert.Equal(t, filepath.Join("resumes", "conan_o_brien.pdf"), ResumePath("resumes", "  Conan O'Brien! "))
	assert.Equal(t, filepath.Join("r", "jean_luc_picard.pdf"), ResumePath("r", "Jean-Luc   Picard"))
}

type stubResumeParser struct {
	bios map[string]string
	err  error
}

func (s *stubResumeParser) ExtractText(filePath string) (string, error) {
	return s.ExtractBio(filePath)
}

func (s *stubResumeParser) ExtractBio(filePath string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.bios[filepath.Base(filePath)], nil
}

func TestAttachResumeBios(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alice_johnson.pdf", "bob_smith.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF"), 0o644))
	}

	employees := sampleCorpus()
	employees[1].Bio = "Existing bio."
	parser := &stubResumeParser{bios: map[string]string{
		"alice_johnson.pdf": "Alice designs diagnostic models.",
		"bob_smith.pdf":     "Should not be used.",
	}}

	attached := AttachResumeBios(employees, dir, parser, nil)
	assert.Equal(t, 1, attached)
	assert.Equal(t, "Alice designs diagnostic models.", employees[0].Bio)
	assert.Equal(t, "Existing bio.", employees[1].Bio)
	assert.Empty(t, employees[2].Bio)

	t.Run("parse errors are skipped", func(t *testing.T) {
		employees := []models.Employee{{Name: "Alice Johnson"}}
		attached := AttachResumeBios(employees, dir, &stubResumeParser{err: errStub}, nil)
		assert.Zero(t, attached)
		assert.Empty(t, employees[0].Bio)
	})
}
