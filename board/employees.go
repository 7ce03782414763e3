package board

import (
	"context"
	"fmt"

	"github.com/ncobase/taskboard/board/query"
	"github.com/ncobase/taskboard/board/store"
	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
)

// AddEmployee adds an employee
func (b *Board) AddEmployee(ctx context.Context, body *structs.EmployeeBody) (*structs.Employee, error) {
	ctx = action(ctx, "add_employee")
	e, err := b.store.AddEmployee(ctx, body)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Add Employee", err)
	}
	b.notify(ctx, "Employee Added", fmt.Sprintf("%s has been added.", e.FullName()))
	return e, nil
}

// UpdateEmployee changes the set fields of an employee
func (b *Board) UpdateEmployee(ctx context.Context, id string, body *structs.UpdateEmployeeBody) (*structs.Employee, error) {
	ctx = action(ctx, "update_employee")
	e, err := b.store.UpdateEmployee(ctx, id, body)
	if err != nil {
		return nil, b.fail(ctx, "Could Not Update Employee", err)
	}
	b.notify(ctx, "Employee Updated", fmt.Sprintf("%s has been updated.", e.FullName()))
	b.dropInactiveFilter()
	return e, nil
}

// ToggleEmployeeActive flips the active flag of an employee
func (b *Board) ToggleEmployeeActive(ctx context.Context, id string) (*structs.Employee, error) {
	ctx = action(ctx, "toggle_employee")
	current, ok := b.store.Employee(id)
	if !ok {
		return nil, b.fail(ctx, "Could Not Update Employee", ecode.NewNotFound(store.KindEmployee, id))
	}
	active := !current.IsActive
	e, err := b.store.UpdateEmployee(ctx, id, &structs.UpdateEmployeeBody{IsActive: &active})
	if err != nil {
		return nil, b.fail(ctx, "Could Not Update Employee", err)
	}
	state := "inactive"
	if e.IsActive {
		state = "active"
	}
	b.notify(ctx, "Employee Updated", fmt.Sprintf("%s is now %s.", e.FullName(), state))
	b.dropInactiveFilter()
	return e, nil
}

// dropInactiveFilter clears an employee filter that no longer points at an active employee
func (b *Board) dropInactiveFilter() {
	if b.filter.EmployeeID == "" {
		return
	}
	if e, ok := b.store.Employee(b.filter.EmployeeID); !ok || !e.IsActive {
		b.filter.EmployeeID = ""
	}
}

// DeleteEmployee removes an employee and its scheduled tasks.
// Deleting the filtered employee clears the employee filter.
func (b *Board) DeleteEmployee(ctx context.Context, id string) bool {
	ctx = action(ctx, "delete_employee")
	e, ok := b.store.Employee(id)
	if !ok || !b.store.DeleteEmployee(ctx, id) {
		return false
	}
	if b.filter.EmployeeID == id {
		b.filter.EmployeeID = ""
	}
	b.notifier.Notify(ctx, destructive("Employee Deleted",
		fmt.Sprintf("Employee %q and their scheduled tasks have been deleted.", e.FullName())))
	return true
}

// Employees returns every employee in store order
func (b *Board) Employees() []structs.Employee {
	return b.store.Snapshot().Employees
}

// ActiveEmployees returns the employees that can be scheduled
func (b *Board) ActiveEmployees() []structs.Employee {
	return query.ActiveEmployees(b.store.Snapshot())
}
