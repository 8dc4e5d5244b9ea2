package services

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alfredoptarigan/hr-chatbot/internal/config"
	"alfredoptarigan/hr-chatbot/internal/models"
)

// Where a detected domain came from.
const (
	DomainFromQuery   = "query"
	DomainFromCorpus  = "corpus"
	DomainFromProject = "project_token"
)

// DetectedAttributes is the expertise/domain pair read from a query. Empty
// strings mean "not found".
type DetectedAttributes struct {
	Expertise    string
	Domain       string
	DomainSource string
}

type AttributeDetector struct {
	vocab *config.Vocabulary
}

func NewAttributeDetector(vocab *config.Vocabulary) *AttributeDetector {
	if vocab == nil {
		vocab = config.DefaultVocabulary()
	}
	return &AttributeDetector{vocab: vocab}
}

// DetectQuery scans the query alone. Both scans are first-match-wins over the
// configured keyword order, using substring containment.
func (d *AttributeDetector) DetectQuery(query string) DetectedAttributes {
	normalized := normalizeQuery(query)

	var attrs DetectedAttributes
	if kw := firstContained(normalized, d.vocab.Expertise); kw != "" {
		attrs.Expertise = d.renderExpertise(kw)
	}
	if kw := firstContained(normalized, d.vocab.Domains); kw != "" {
		attrs.Domain = kw
		attrs.DomainSource = DomainFromQuery
	}
	return attrs
}

// Detect runs the query scan and, when it finds no domain, infers one from the
// retrieved employees' projects.
func (d *AttributeDetector) Detect(query string, retrieved []models.Employee) DetectedAttributes {
	attrs := d.DetectQuery(query)
	if attrs.Domain == "" {
		attrs.Domain, attrs.DomainSource = d.InferDomain(retrieved)
	}
	return attrs
}

// InferDomain picks the domain keyword occurring most often in the employees'
// project strings. Without any keyword it falls back to the most frequent
// meaningful project token. Ties go to whichever candidate was seen first.
// It returns empty strings when nothing qualifies.
func (d *AttributeDetector) InferDomain(employees []models.Employee) (domain, source string) {
	var projects []string
	for _, emp := range employees {
		for _, p := range emp.Projects {
			projects = append(projects, strings.ToLower(p))
		}
	}
	if len(projects) == 0 {
		return "", ""
	}

	keywords := newOrderedCounter()
	for _, p := range projects {
		for _, kw := range d.vocab.Domains {
			if n := strings.Count(p, kw); n > 0 {
				keywords.add(kw, n)
			}
		}
	}
	if best := keywords.top(); best != "" {
		return best, DomainFromCorpus
	}

	tokens := newOrderedCounter()
	for _, p := range projects {
		for _, field := range strings.Fields(p) {
			tok := strings.TrimFunc(field, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			if len([]rune(tok)) < d.vocab.MinTokenLength || slices.Contains(d.vocab.StopWords, tok) {
				continue
			}
			tokens.add(tok, 1)
		}
	}
	if best := tokens.top(); best != "" {
		return best, DomainFromProject
	}
	return "", ""
}

func (d *AttributeDetector) renderExpertise(keyword string) string {
	if slices.Contains(d.vocab.Acronyms, keyword) {
		return strings.ToUpper(keyword)
	}
	// Casers keep state, so one per call.
	return cases.Title(language.English).String(keyword)
}

func firstContained(text string, keywords []string) string {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// orderedCounter counts keys and remembers the order they first appeared in.
type orderedCounter struct {
	order  []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// top returns the highest count; the earliest key wins a tie.
func (c *orderedCounter) top() string {
	best, bestCount := "", 0
	for _, key := range c.order {
		if c.counts[key] > bestCount {
			best, bestCount = key, c.counts[key]
		}
	}
	return best
}
