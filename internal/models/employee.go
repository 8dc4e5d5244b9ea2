package models

import (
	"time"
)

// Employee is one profile of the corpus. Its identity is its position in the
// corpus; Position mirrors that when the corpus is stored in the database.
type Employee struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	Position        int       `gorm:"not null;uniqueIndex" json:"-"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Skills          []string  `gorm:"type:jsonb;serializer:json" json:"skills"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	Projects        []string  `gorm:"type:jsonb;serializer:json" json:"projects"`
	Availability    string    `gorm:"type:text" json:"availability"`
	Gender          string    `gorm:"type:text" json:"gender,omitempty"`
	Bio             string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}
