// Package selection tracks which scheduled tasks are selected for a bulk move.
package selection

import (
	"slices"
)

// State of a selection
type State int

const (
	Empty State = iota
	Single
	Multiple
)

func (s State) String() string {
	switch s {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return "empty"
	}
}

// Selection is an ordered set of scheduled task ids.
// The zero value is an empty selection.
type Selection struct {
	ids []string
}

// State returns the current state
func (s *Selection) State() State {
	switch len(s.ids) {
	case 0:
		return Empty
	case 1:
		return Single
	default:
		return Multiple
	}
}

// Click replaces the selection with id
func (s *Selection) Click(id string) {
	s.ids = append(s.ids[:0], id)
}

// Toggle adds id when absent and removes it when present
func (s *Selection) Toggle(id string) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
}

// Select applies a click, toggling when the modifier key is held
func (s *Selection) Select(id string, modifier bool) {
	if modifier {
		s.Toggle(id)
		return
	}
	s.Click(id)
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// Contains reports whether id is selected
func (s *Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the selected ids in selection order
func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of selected ids
func (s *Selection) Len() int { return len(s.ids) }

// Retain drops ids for which keep returns false, used after records disappear
func (s *Selection) Retain(keep func(id string) bool) {
	s.ids = slices.DeleteFunc(s.ids, func(id string) bool { return !keep(id) })
}
