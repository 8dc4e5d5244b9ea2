package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pronouns is the subject/possessive pair used in generated candidate text.
type Pronouns struct {
	Subject    string `yaml:"subject"`
	Possessive string `yaml:"possessive"`
}

// Vocabulary holds the ordered keyword lists that drive attribute detection and
// the gender to pronoun mapping used by the narrative. Order is significant in
// every list: earlier entries win.
type Vocabulary struct {
	Expertise       []string            `yaml:"expertise"`
	Domains         []string            `yaml:"domains"`
	Acronyms        []string            `yaml:"acronyms"`
	StopWords       []string            `yaml:"stop_words"`
	MinTokenLength  int                 `yaml:"min_token_length"`
	Pronouns        map[string]Pronouns `yaml:"pronouns"`
	DefaultPronouns Pronouns            `yaml:"default_pronouns"`
}

func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Expertise: []string{
			"machine learning", "ml", "deep learning", "ai", "artificial intelligence",
			"frontend", "backend", "fullstack", "devops", "cloud", "data science", "nlp",
			"computer vision", "cybersecurity", "mobile development", "blockchain",
		},
		Domains: []string{
			"healthcare", "finance", "banking", "education", "ecommerce", "cloud",
			"iot", "logistics", "retail", "manufacturing", "gaming",
		},
		Acronyms: []string{"ml", "ai"},
		StopWords: []string{
			"system", "platform", "tool", "app", "website", "dashboard", "portal", "generator", "tracker",
		},
		MinTokenLength: 4,
		Pronouns: map[string]Pronouns{
			"male": {Subject: "He", Possessive: "His"},
		},
		DefaultPronouns: Pronouns{Subject: "She", Possessive: "Her"},
	}
}

// LoadVocabulary reads a YAML vocabulary file. An empty path yields the
// defaults; sections missing from the file keep their default values.
func LoadVocabulary(path string) (*Vocabulary, error) {
	vocab := DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	var file Vocabulary
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", path, err)
	}

	if len(file.Expertise) > 0 {
		vocab.Expertise = file.Expertise
	}
	if len(file.Domains) > 0 {
		vocab.Domains = file.Domains
	}
	if file.Acronyms != nil {
		vocab.Acronyms = file.Acronyms
	}
	if file.StopWords != nil {
		vocab.StopWords = file.StopWords
	}
	if file.MinTokenLength > 0 {
		vocab.MinTokenLength = file.MinTokenLength
	}
	if len(file.Pronouns) > 0 {
		vocab.Pronouns = file.Pronouns
	}
	if file.DefaultPronouns.Subject != "" {
		vocab.DefaultPronouns = file.DefaultPronouns
	}

	vocab.normalize()
	return vocab, nil
}

// normalize lower-cases keyword lists so matching against a normalized query
// never depends on how the file was written.
func (v *Vocabulary) normalize() {
	lower := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	v.Expertise = lower(v.Expertise)
	v.Domains = lower(v.Domains)
	v.Acronyms = lower(v.Acronyms)
	v.StopWords = lower(v.StopWords)

	pronouns := make(map[string]Pronouns, len(v.Pronouns))
	for gender, p := range v.Pronouns {
		pronouns[strings.ToLower(strings.TrimSpace(gender))] = p
	}
	v.Pronouns = pronouns
}

// PronounsFor resolves the pronoun pair for a gender value. Unknown or empty
// values use DefaultPronouns.
func (v *Vocabulary) PronounsFor(gender string) Pronouns {
	if p, ok := v.Pronouns[strings.ToLower(strings.TrimSpace(gender))]; ok {
		return p
	}
	return v.DefaultPronouns
}
