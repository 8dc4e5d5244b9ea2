package services

import (
	"slices"
	"strings"

	"alfredoptarigan/hr-chatbot/internal/models"
)

// ExactMatcher resolves queries that name a corpus skill exactly.
type ExactMatcher struct {
	vocabulary []string
	holders    map[string][]int
}

// NewExactMatcher folds every skill in the corpus to lower case and records
// which positions hold it. The vocabulary is kept sorted so lookups never
// depend on map order.
func NewExactMatcher(corpus []models.Employee) *ExactMatcher {
	holders := make(map[string][]int)
	for i, emp := range corpus {
		for _, skill := range emp.Skills {
			folded := foldSkill(skill)
			if folded == "" {
				continue
			}
			positions := holders[folded]
			if n := len(positions); n > 0 && positions[n-1] == i {
				continue
			}
			holders[folded] = append(positions, i)
		}
	}

	vocabulary := make([]string, 0, len(holders))
	for skill := range holders {
		vocabulary = append(vocabulary, skill)
	}
	slices.Sort(vocabulary)

	return &ExactMatcher{vocabulary: vocabulary, holders: holders}
}

// Match returns the matched skill and the corpus positions holding it, in
// corpus order. The query must already be normalized. ok is false when the
// query is not a full-string match for any skill.
func (m *ExactMatcher) Match(normalized string) (skill string, positions []int, ok bool) {
	if normalized == "" {
		return "", nil, false
	}
	i, found := slices.BinarySearch(m.vocabulary, normalized)
	if !found {
		return "", nil, false
	}
	skill = m.vocabulary[i]
	return skill, slices.Clone(m.holders[skill]), true
}

// Vocabulary returns the sorted, case-folded skill list.
func (m *ExactMatcher) Vocabulary() []string {
	return slices.Clone(m.vocabulary)
}

func foldSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
