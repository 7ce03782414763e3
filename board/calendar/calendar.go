// Package calendar keeps the weekly and monthly navigation state of the board.
package calendar

import (
	"time"

	"github.com/ncobase/taskboard/types"
)

// View is the board layout
type View string

const (
	Weekly  View = "weekly"
	Monthly View = "monthly"
)

// Valid reports whether v is a known view
func (v View) Valid() bool { return v == Weekly || v == Monthly }

// Calendar tracks the displayed week and month independently,
// like switching tabs keeps each view where it was.
type Calendar struct {
	view      View
	weekStart time.Weekday
	week      time.Time
	month     time.Time
}

// New creates a weekly calendar positioned on today
func New(today time.Time, weekStart time.Weekday) *Calendar {
	c := &Calendar{view: Weekly, weekStart: weekStart}
	c.week = StartOfWeek(today, weekStart)
	c.month = StartOfMonth(today)
	return c
}

// StartOfWeek returns local midnight of the first day of the week containing t
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return types.StartOfDay(t).AddDate(0, 0, -offset)
}

// StartOfMonth returns local midnight of the first day of t's month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// View returns the current view
func (c *Calendar) View() View { return c.view }

// WeekStart returns the first weekday of a week
func (c *Calendar) WeekStart() time.Weekday { return c.weekStart }

// SetView switches the layout, it reports whether the view changed
func (c *Calendar) SetView(v View) bool {
	if !v.Valid() || v == c.view {
		return false
	}
	c.view = v
	return true
}

// ActiveDate returns the first day of the displayed week or month
func (c *Calendar) ActiveDate() time.Time {
	if c.view == Monthly {
		return c.month
	}
	return c.week
}

// Prev moves one week or month back
func (c *Calendar) Prev() {
	if c.view == Monthly {
		c.month = c.month.AddDate(0, -1, 0)
		return
	}
	c.week = c.week.AddDate(0, 0, -7)
}

// Next moves one week or month forward
func (c *Calendar) Next() {
	if c.view == Monthly {
		c.month = c.month.AddDate(0, 1, 0)
		return
	}
	c.week = c.week.AddDate(0, 0, 7)
}

// Today moves the current view to the period containing today
func (c *Calendar) Today(today time.Time) {
	c.SetDate(today)
}

// SetDate moves the current view to the period containing d
func (c *Calendar) SetDate(d time.Time) {
	if c.view == Monthly {
		c.month = StartOfMonth(d)
		return
	}
	c.week = StartOfWeek(d, c.weekStart)
}

// DrillInto opens the week containing d in the weekly view
func (c *Calendar) DrillInto(d time.Time) {
	c.week = StartOfWeek(d, c.weekStart)
	c.view = Weekly
}

// WeekDays returns the seven days of the displayed week
func (c *Calendar) WeekDays() []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = c.week.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid returns whole weeks covering the displayed month
func (c *Calendar) MonthGrid() [][]time.Time {
	first := StartOfWeek(c.month, c.weekStart)
	last := c.month.AddDate(0, 1, -1)

	var grid [][]time.Time
	for day := first; !day.After(last); {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = day
			day = day.AddDate(0, 0, 1)
		}
		grid = append(grid, week)
	}
	return grid
}

// VisibleDays returns every day shown by the current view
func (c *Calendar) VisibleDays() []time.Time {
	if c.view == Weekly {
		return c.WeekDays()
	}
	var days []time.Time
	for _, week := range c.MonthGrid() {
		days = append(days, week...)
	}
	return days
}

// InMonth reports whether d belongs to the displayed month
func (c *Calendar) InMonth(d time.Time) bool {
	return d.Year() == c.month.Year() && d.Month() == c.month.Month()
}

// VisibleRange returns the first and last visible dates as YYYY-MM-DD
func (c *Calendar) VisibleRange() (from, to string) {
	days := c.VisibleDays()
	return types.FormatDate(days[0]), types.FormatDate(days[len(days)-1])
}

// RangeLabel describes the displayed period, "June 10 - 16, 2024" or "June 2024"
func (c *Calendar) RangeLabel() string {
	if c.view == Monthly {
		return types.FormatTime(c.month, "MMMM yyyy")
	}
	end := c.week.AddDate(0, 0, 6)
	return types.FormatTime(c.week, "MMMM d") + " - " + types.FormatTime(end, "d, yyyy")
}
