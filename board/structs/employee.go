// Package structs defines the board domain models and request bodies.
package structs

import (
	"strings"
	"time"
)

// Employee is a person tasks can be scheduled for.
type Employee struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	WarehouseCode string    `json:"warehouse_code"`
	CreatedAt     time.Time `json:"created_at"`
	IsActive      bool      `json:"is_active"`
}

// FullName returns first and last name joined by a space
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// EmployeeBody is the payload for adding an employee.
type EmployeeBody struct {
	ID            string `json:"id" validate:"required,max=50"`
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"required,max=50"`
	WarehouseCode string `json:"warehouse_code" validate:"required,max=20"`
	IsActive      bool   `json:"is_active"`
}

// UpdateEmployeeBody is the payload for updating an employee, nil fields are left untouched.
type UpdateEmployeeBody struct {
	FirstName     *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName      *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	WarehouseCode *string `json:"warehouse_code,omitempty" validate:"omitempty,max=20"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
