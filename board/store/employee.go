package store

import (
	"context"
	"strings"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/validation/validator"
)

func trimEmployeeBody(body *structs.EmployeeBody) {
	body.ID = strings.TrimSpace(body.ID)
	body.FirstName = strings.TrimSpace(body.FirstName)
	body.LastName = strings.TrimSpace(body.LastName)
	body.WarehouseCode = strings.TrimSpace(body.WarehouseCode)
}

func trimOptional(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

// AddEmployee adds a new employee with CreatedAt set from the store clock.
func (s *Store) AddEmployee(ctx context.Context, body *structs.EmployeeBody) (*structs.Employee, error) {
	if body == nil {
		return nil, ecode.NewValidation("id", ecode.FieldIsRequired("id"))
	}
	b := *body
	trimEmployeeBody(&b)
	if fields := validator.ValidateStruct(&b); len(fields) > 0 {
		return nil, ecode.NewValidationFields(fields)
	}

	s.mu.Lock()
	if _, ok := s.employees[b.ID]; ok {
		s.mu.Unlock()
		return nil, ecode.NewDuplicateID(KindEmployee, b.ID)
	}
	e := structs.Employee{
		ID:            b.ID,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		WarehouseCode: b.WarehouseCode,
		CreatedAt:     s.clock(),
		IsActive:      b.IsActive,
	}
	s.employees[e.ID] = &record[structs.Employee]{seq: s.nextSeq(), val: e}
	s.mu.Unlock()

	logger.Debugf(ctx, "employee %s added", e.ID)
	s.publish(Change{Op: OpEmployeeAdded, IDs: []string{e.ID}})
	return &e, nil
}

// UpdateEmployee merges the non-nil fields of body into an existing employee.
// The id and CreatedAt never change.
func (s *Store) UpdateEmployee(ctx context.Context, id string, body *structs.UpdateEmployeeBody) (*structs.Employee, error) {
	if body == nil {
		body = &structs.UpdateEmployeeBody{}
	}
	b := *body
	trimOptional(b.FirstName)
	trimOptional(b.LastName)
	trimOptional(b.WarehouseCode)
	fields := validator.ValidateStruct(&b)
	for name, p := range map[string]*string{
		"first_name":     b.FirstName,
		"last_name":      b.LastName,
		"warehouse_code": b.WarehouseCode,
	} {
		if p != nil && *p == "" {
			fields[name] = ecode.FieldIsRequired(name)
		}
	}
	if len(fields) > 0 {
		return nil, ecode.NewValidationFields(fields)
	}

	s.mu.Lock()
	rec, ok := s.employees[id]
	if !ok {
		s.mu.Unlock()
		return nil, ecode.NewNotFound(KindEmployee, id)
	}
	if b.FirstName != nil {
		rec.val.FirstName = *b.FirstName
	}
	if b.LastName != nil {
		rec.val.LastName = *b.LastName
	}
	if b.WarehouseCode != nil {
		rec.val.WarehouseCode = *b.WarehouseCode
	}
	if b.IsActive != nil {
		rec.val.IsActive = *b.IsActive
	}
	e := rec.val
	s.mu.Unlock()

	s.publish(Change{Op: OpEmployeeUpdated, IDs: []string{id}})
	return &e, nil
}

// DeleteEmployee removes an employee and every scheduled task assigned to it.
// Deleting an unknown id is a no-op and reports false.
func (s *Store) DeleteEmployee(ctx context.Context, id string) bool {
	s.mu.Lock()
	if _, ok := s.employees[id]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.employees, id)
	cascaded := s.setToSlice(s.byEmployee[id])
	for _, stID := range cascaded {
		s.removeScheduled(stID)
	}
	s.mu.Unlock()

	logger.Infof(ctx, "employee %s deleted with %d scheduled tasks", id, len(cascaded))
	s.publish(Change{Op: OpEmployeeDeleted, IDs: []string{id}, Cascaded: cascaded})
	return true
}

// Employee returns a copy of the employee with id
func (s *Store) Employee(id string) (*structs.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.employees[id]
	if !ok {
		return nil, false
	}
	e := rec.val
	return &e, true
}

// HasEmployee reports whether an employee with id exists
func (s *Store) HasEmployee(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.employees[id]
	return ok
}
