package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee  = "EMPLOYEE"
	RoleManager   = "MANAGER"
	RoleExecutive = "EXECUTIVE"
	RoleHR        = "HR"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string     `gorm:"type:varchar(30);uniqueIndex:uq_employee_number"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Email          string     `gorm:"type:varchar(150);uniqueIndex:uq_employee_email"`
	Role           string     `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index:idx_employees_manager"`
	IsActive       bool       `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string { return "employees" }
