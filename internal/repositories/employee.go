package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/hr-chatbot/internal/models"
)

type EmployeeRepository interface {
	FindAll() ([]models.Employee, error)
	ReplaceAll(employees []models.Employee) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// FindAll implements EmployeeRepository. Rows come back in corpus order.
func (r *employeeRepository) FindAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("position ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	return employees, nil
}

// ReplaceAll implements EmployeeRepository. The table is cleared and the given
// employees are inserted with Position set to their slice index.
func (r *employeeRepository) ReplaceAll(employees []models.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Employee{}).Error; err != nil {
			return fmt.Errorf("failed to clear employees: %w", err)
		}
		if len(employees) == 0 {
			return nil
		}

		rows := make([]models.Employee, len(employees))
		for i, emp := range employees {
			emp.ID = 0
			emp.Position = i
			rows[i] = emp
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert employees: %w", err)
		}
		return nil
	})
}

// Count implements EmployeeRepository.
func (r *employeeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
