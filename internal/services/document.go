package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/hr-chatbot/internal/models"
)

// BuildDocument renders the single sentence that represents an employee for
// embedding.
func BuildDocument(emp models.Employee) string {
	return fmt.Sprintf("Name: %s. Skills: %s. Experience: %d years. Projects: %s.",
		emp.Name,
		strings.Join(emp.Skills, ", "),
		emp.ExperienceYears,
		strings.Join(emp.Projects, ", "),
	)
}

func buildDocuments(corpus []models.Employee) []string {
	docs := make([]string, len(corpus))
	for i, emp := range corpus {
		docs[i] = BuildDocument(emp)
	}
	return docs
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
