// Package store holds the in-memory board collections and keeps
// scheduled tasks consistent with the employees and tasks they reference.
package store

import (
	"cmp"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/ncobase/taskboard/board/structs"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/event"
	"github.com/ncobase/taskboard/nanoid"
)

// Record kinds used in errors and change events
const (
	KindEmployee      = "employee"
	KindTask          = "task"
	KindScheduledTask = "scheduled task"
)

const (
	defaultTaskHours = 8.0
	defaultMinHours  = 0.5
)

// Clock returns the current time
type Clock func() time.Time

type record[T any] struct {
	seq uint64
	val T
}

// Store is the single owner of employees, tasks and scheduled tasks.
type Store struct {
	mu sync.RWMutex

	employees map[string]*record[structs.Employee]
	tasks     map[string]*record[structs.Task]
	scheduled map[string]*record[structs.ScheduledTask]

	// scheduled task ids keyed by employee id and task id
	byEmployee map[string]map[string]struct{}
	byTask     map[string]map[string]struct{}

	seq uint64

	clock        Clock
	newID        nanoid.Generator
	bus          *event.Bus
	defaultHours float64
	minHours     float64
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source used for CreatedAt
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithIDGenerator sets the generator for task and scheduled task ids
func WithIDGenerator(g nanoid.Generator) Option {
	return func(s *Store) {
		if g != nil {
			s.newID = g
		}
	}
}

// WithBus publishes changes on an existing bus
func WithBus(b *event.Bus) Option {
	return func(s *Store) {
		if b != nil {
			s.bus = b
		}
	}
}

// WithHours overrides the default task hours and raises the minimum allowed hours.
// The minimum never drops below 0.5.
func WithHours(defaultHours, minHours float64) Option {
	return func(s *Store) {
		if minHours > defaultMinHours && !math.IsInf(minHours, 0) {
			s.minHours = minHours
		}
		if defaultHours >= s.minHours && !math.IsInf(defaultHours, 0) {
			s.defaultHours = defaultHours
		}
	}
}

// hoursError returns the validation message for h, empty when h is acceptable
func (s *Store) hoursError(field string, h float64) string {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return ecode.FieldIsInvalid(field)
	}
	if h < s.minHours {
		return ecode.FieldIsBelow(field, s.minHours)
	}
	return ""
}

// New creates an empty Store
func New(opts ...Option) *Store {
	s := &Store{
		employees:    make(map[string]*record[structs.Employee]),
		tasks:        make(map[string]*record[structs.Task]),
		scheduled:    make(map[string]*record[structs.ScheduledTask]),
		byEmployee:   make(map[string]map[string]struct{}),
		byTask:       make(map[string]map[string]struct{}),
		clock:        time.Now,
		newID:        nanoid.PrimaryKey(),
		defaultHours: defaultTaskHours,
		minHours:     defaultMinHours,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = event.NewBus("store")
	}
	return s
}

// MinHours returns the minimum hours accepted for tasks and scheduled tasks
func (s *Store) MinHours() float64 { return s.minHours }

// DefaultTaskHours returns the hours used when a task body leaves them unset
func (s *Store) DefaultTaskHours() float64 { return s.defaultHours }

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func index(idx map[string]map[string]struct{}, key, id string) {
	set, ok := idx[key]
	if !ok {
		set = make(map[string]struct{})
		idx[key] = set
	}
	set[id] = struct{}{}
}

func unindex(idx map[string]map[string]struct{}, key, id string) {
	set, ok := idx[key]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(idx, key)
	}
}

// insertScheduled must be called with the write lock held.
func (s *Store) insertScheduled(st structs.ScheduledTask) {
	s.scheduled[st.ID] = &record[structs.ScheduledTask]{seq: s.nextSeq(), val: st}
	index(s.byEmployee, st.EmployeeID, st.ID)
	index(s.byTask, st.TaskID, st.ID)
}

// removeScheduled must be called with the write lock held.
func (s *Store) removeScheduled(id string) bool {
	rec, ok := s.scheduled[id]
	if !ok {
		return false
	}
	delete(s.scheduled, id)
	unindex(s.byEmployee, rec.val.EmployeeID, id)
	unindex(s.byTask, rec.val.TaskID, id)
	return true
}

// sortedIDs returns map keys ordered by insertion sequence
func sortedIDs[T any](m map[string]*record[T]) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Compare(m[a].seq, m[b].seq)
	})
	return ids
}

// setToSlice returns the ids of an index set in insertion order
func (s *Store) setToSlice(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Compare(s.scheduled[a].seq, s.scheduled[b].seq)
	})
	return ids
}
