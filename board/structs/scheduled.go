package structs

import (
	"slices"
	"strings"
)

// Status is the progress state of a scheduled task.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every known status in display order
var Statuses = []Status{StatusScheduled, StatusInProgress, StatusCompleted}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

// ScheduledTask is a task assigned to an employee on a calendar date.
type ScheduledTask struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	TaskID     string   `json:"task_id"`
	Date       string   `json:"date"`
	Status     Status   `json:"status"`
	Hours      float64  `json:"hours"`
	Tags       []string `json:"tags"`
}

// Clone returns a copy that does not share the tag slice
func (st ScheduledTask) Clone() ScheduledTask {
	st.Tags = slices.Clone(st.Tags)
	if st.Tags == nil {
		st.Tags = []string{}
	}
	return st
}

// NormalizeTags trims tags, drops empty ones and removes duplicates keeping first appearance.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
