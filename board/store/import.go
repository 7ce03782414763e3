package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/types"
)

const missingEmployeeFields = "Missing required fields (ID, First Name, Last Name, Warehouse Code)"

// ImportEmployees validates rows and adds the valid ones in a single batch.
// Ids already in the store or earlier in the batch are skipped as duplicates.
// After the batch is applied employees are ordered by id.
func (s *Store) ImportEmployees(ctx context.Context, rows []structs.EmployeeRow) *structs.ImportReport {
	report := &structs.ImportReport{}
	now := s.clock()

	s.mu.Lock()
	batch := make([]structs.Employee, 0, len(rows))
	inBatch := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		id := strings.TrimSpace(row.ID)
		first := strings.TrimSpace(row.FirstName)
		last := strings.TrimSpace(row.LastName)
		warehouse := strings.TrimSpace(row.WarehouseCode)
		if id == "" || first == "" || last == "" || warehouse == "" {
			report.AddError(row.Line, id, missingEmployeeFields)
			continue
		}
		_, inStore := s.employees[id]
		_, seen := inBatch[id]
		if inStore || seen {
			report.AddDuplicate(row.Line, id, fmt.Sprintf("Employee ID %q (%s %s) already exists.", id, first, last))
			continue
		}

		createdAt := now
		if raw := strings.TrimSpace(row.CreatedAt); raw != "" {
			if t, err := types.ParseLocalTime(raw); err == nil {
				createdAt = t
			} else {
				report.AddWarning(row.Line, id, fmt.Sprintf("Using current date for \"Created At\" as %q is invalid.", raw))
			}
		}

		inBatch[id] = struct{}{}
		batch = append(batch, structs.Employee{
			ID:            id,
			FirstName:     first,
			LastName:      last,
			WarehouseCode: warehouse,
			CreatedAt:     createdAt,
			IsActive:      row.IsActive,
		})
	}

	if len(batch) > 0 {
		for _, e := range batch {
			s.employees[e.ID] = &record[structs.Employee]{val: e}
		}
		s.resequenceEmployees()
	}
	report.Added = len(batch)
	s.mu.Unlock()

	logger.Infof(ctx, "employee import: %d added, %d skipped, %d errors", report.Added, report.Skipped, report.Errors)
	if len(batch) > 0 {
		ids := make([]string, len(batch))
		for i, e := range batch {
			ids[i] = e.ID
		}
		s.publish(Change{Op: OpEmployeesImported, IDs: ids})
	}
	return report
}

// resequenceEmployees orders employees by id, must be called with the write lock held.
func (s *Store) resequenceEmployees() {
	ids := make([]string, 0, len(s.employees))
	for id := range s.employees {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		s.employees[id].seq = s.nextSeq()
	}
}

// ImportScheduledTasks resolves rows against the store and adds the valid ones in a single batch.
func (s *Store) ImportScheduledTasks(ctx context.Context, rows []structs.ScheduledTaskRow) *structs.ImportReport {
	report := &structs.ImportReport{}

	s.mu.Lock()
	batch := make([]structs.ScheduledTask, 0, len(rows))
	for _, row := range rows {
		st, warning, err := s.resolveScheduledRow(row)
		if err != nil {
			report.AddError(row.Line, row.EmployeeID, err.Error())
			continue
		}
		if warning != "" {
			report.AddWarning(row.Line, row.EmployeeID, warning)
		}
		batch = append(batch, st)
	}
	for i := range batch {
		batch[i].ID = s.newScheduledID()
		s.insertScheduled(batch[i])
	}
	report.Added = len(batch)
	s.mu.Unlock()

	logger.Infof(ctx, "schedule import: %d added, %d errors", report.Added, report.Errors)
	if len(batch) > 0 {
		ids := make([]string, len(batch))
		for i, st := range batch {
			ids[i] = st.ID
		}
		s.publish(Change{Op: OpScheduledTaskImported, IDs: ids})
	}
	return report
}

// resolveScheduledRow must be called with the lock held.
func (s *Store) resolveScheduledRow(row structs.ScheduledTaskRow) (structs.ScheduledTask, string, error) {
	date := strings.TrimSpace(row.Date)
	if err := invalidDate(date); err != nil {
		return structs.ScheduledTask{}, "", err
	}
	employeeID := strings.TrimSpace(row.EmployeeID)
	if _, ok := s.employees[employeeID]; !ok {
		return structs.ScheduledTask{}, "", ecode.NewNotFound(KindEmployee, employeeID)
	}
	task, ok := s.taskByNameLocked(row.TaskName)
	if !ok {
		return structs.ScheduledTask{}, "", ecode.NewNotFound(KindTask, strings.TrimSpace(row.TaskName))
	}

	hours := task.DefaultHours
	if raw := strings.TrimSpace(row.Hours); raw != "" {
		h, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return structs.ScheduledTask{}, "", ecode.NewValidation("hours", ecode.FieldIsInvalid("hours"))
		}
		if msg := s.hoursError("hours", h); msg != "" {
			return structs.ScheduledTask{}, "", ecode.NewValidation("hours", msg)
		}
		hours = h
	}

	var warning string
	status := structs.StatusScheduled
	if raw := strings.TrimSpace(row.Status); raw != "" {
		if parsed, ok := structs.ParseStatus(raw); ok {
			status = parsed
		} else {
			warning = fmt.Sprintf("Unknown status %q, using %q.", raw, structs.StatusScheduled)
		}
	}

	return structs.ScheduledTask{
		EmployeeID: employeeID,
		TaskID:     task.ID,
		Date:       date,
		Status:     status,
		Hours:      hours,
		Tags:       structs.NormalizeTags(row.Tags),
	}, warning, nil
}

func (s *Store) taskByNameLocked(name string) (structs.Task, bool) {
	name = strings.TrimSpace(name)
	var (
		found structs.Task
		seq   uint64
		ok    bool
	)
	for _, rec := range s.tasks {
		if !strings.EqualFold(rec.val.Name, name) {
			continue
		}
		if !ok || cmp.Less(rec.seq, seq) {
			found, seq, ok = rec.val, rec.seq, true
		}
	}
	return found, ok
}
