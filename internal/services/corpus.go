package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/models"
	"alfredoptarigan/hr-chatbot/internal/repositories"
)

// LoadCorpusFile reads {"employees": [...]} from path. Any problem with the
// file is reported as a *CorpusLoadError.
func LoadCorpusFile(path string) ([]models.Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CorpusLoadError{Source: path, Cause: err}
	}

	var file struct {
		Employees *[]models.Employee `json:"employees"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &CorpusLoadError{Source: path, Cause: err}
	}
	if file.Employees == nil {
		return nil, &CorpusLoadError{Source: path, Cause: errors.New(`missing "employees" key`)}
	}

	if err := validateCorpus(*file.Employees); err != nil {
		return nil, &CorpusLoadError{Source: path, Cause: err}
	}
	return *file.Employees, nil
}

// LoadCorpusFromRepository reads the corpus from the employees table in
// position order.
func LoadCorpusFromRepository(repo repositories.EmployeeRepository) ([]models.Employee, error) {
	employees, err := repo.FindAll()
	if err != nil {
		return nil, &CorpusLoadError{Source: "database", Cause: err}
	}
	if err := validateCorpus(employees); err != nil {
		return nil, &CorpusLoadError{Source: "database", Cause: err}
	}
	return employees, nil
}

// CorpusOrEmpty applies the corpus failure policy: a load error is logged and
// replaced by an empty corpus so the service stays up.
func CorpusOrEmpty(employees []models.Employee, err error, log *zap.Logger) []models.Employee {
	if err == nil {
		return employees
	}
	if log != nil {
		log.Error("corpus unavailable, serving an empty corpus", zap.Error(err))
	}
	return []models.Employee{}
}

func validateCorpus(employees []models.Employee) error {
	for i, emp := range employees {
		if strings.TrimSpace(emp.Name) == "" {
			return fmt.Errorf("employee %d has no name", i)
		}
		if emp.ExperienceYears < 0 {
			return fmt.Errorf("employee %d (%s) has negative experience_years", i, emp.Name)
		}
	}
	return nil
}
