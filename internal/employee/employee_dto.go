package employee

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required,max=150"`
	Email          string  `json:"email" binding:"required,email"`
	Role           string  `json:"role" binding:"required,oneof=EMPLOYEE MANAGER EXECUTIVE HR"`
	ManagerID      *string `json:"manager_id" binding:"omitempty,uuid"`
	EmployeeNumber string  `json:"employee_number"`
}

type UpdateEmployeeRequest struct {
	FullName  string  `json:"full_name" binding:"required,max=150"`
	Role      string  `json:"role" binding:"required,oneof=EMPLOYEE MANAGER EXECUTIVE HR"`
	ManagerID *string `json:"manager_id" binding:"omitempty,uuid"`
	IsActive  *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ManagerID      *string `json:"manager_id,omitempty"`
	IsActive       bool    `json:"is_active"`
}
