package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/hr-chatbot/internal/config"
	"alfredoptarigan/hr-chatbot/internal/models"
)

const (
	NoMatchMessage  = "I couldn't find any employees matching that query."
	fallbackDomain  = "projects"
	closingTemplate = "%s the technical depth and domain expertise you need. " +
		"Would you like me to provide more details about their specific %s projects " +
		"or check their availability for meetings?"
)

// NarrativeComposer turns a ranked list of employees into the chat answer.
// Output depends only on its inputs.
type NarrativeComposer struct {
	vocab *config.Vocabulary
}

func NewNarrativeComposer(vocab *config.Vocabulary) *NarrativeComposer {
	if vocab == nil {
		vocab = config.DefaultVocabulary()
	}
	return &NarrativeComposer{vocab: vocab}
}

// Compose builds the narrative for the given employees and attributes.
func (c *NarrativeComposer) Compose(employees []models.Employee, attrs DetectedAttributes) *models.Narrative {
	if len(employees) == 0 {
		return &models.Narrative{
			Intro:      "",
			Candidates: []string{},
			Closing:    NoMatchMessage,
		}
	}

	candidates := make([]string, len(employees))
	for i, emp := range employees {
		candidates[i] = c.BuildCandidate(i, emp)
	}

	return &models.Narrative{
		Intro:      c.BuildIntro(len(employees), attrs),
		Candidates: candidates,
		Closing:    c.BuildClosing(len(employees), attrs.Domain),
	}
}

// BuildIntro picks the intro template by which attributes were detected.
func (c *NarrativeComposer) BuildIntro(count int, attrs DetectedAttributes) string {
	noun := "candidates"
	if count == 1 {
		noun = "candidate"
	}

	switch {
	case attrs.Expertise != "" && attrs.Domain != "":
		return fmt.Sprintf("Based on your requirements for %s expertise in %s, I found %d excellent %s:",
			attrs.Expertise, attrs.Domain, count, noun)
	case attrs.Expertise != "":
		return fmt.Sprintf("Based on your requirements for %s expertise, I found %d excellent %s:",
			attrs.Expertise, count, noun)
	case attrs.Domain != "":
		return fmt.Sprintf("Based on your requirements in %s, I found %d excellent %s:",
			attrs.Domain, count, noun)
	default:
		return fmt.Sprintf("Based on your requirements, I found %d excellent %s:", count, noun)
	}
}

// BuildCandidate renders one employee. A bio replaces the generated text.
func (c *NarrativeComposer) BuildCandidate(rank int, emp models.Employee) string {
	if strings.TrimSpace(emp.Bio) != "" {
		return emp.Bio
	}

	p := c.vocab.PronounsFor(emp.Gender)
	skills := strings.Join(emp.Skills, ", ")
	projects := strings.Join(emp.Projects, ", ")

	if rank == 0 {
		return fmt.Sprintf("**%s** would be perfect for this role. "+
			"%s has %d years of experience and is skilled in %s. "+
			"%s projects include: %s. "+
			"%s is currently %s.",
			emp.Name,
			p.Subject, emp.ExperienceYears, skills,
			p.Possessive, projects,
			p.Subject, emp.Availability)
	}

	return fmt.Sprintf("**%s** is another strong candidate with %d years of experience. "+
		"%s knows %s and has worked on %s. "+
		"%s is currently %s.",
		emp.Name, emp.ExperienceYears,
		p.Subject, skills, projects,
		p.Subject, emp.Availability)
}

// BuildClosing picks the closing line by candidate count bucket.
func (c *NarrativeComposer) BuildClosing(count int, domain string) string {
	if domain == "" {
		domain = fallbackDomain
	}

	lead := "All of them have"
	switch count {
	case 1:
		lead = "This candidate has"
	case 2:
		lead = "Both have"
	}
	return fmt.Sprintf(closingTemplate, lead, domain)
}
