package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/kotahara/todoweb/internal/constants"
)

// DueStatus classifies how urgent a todo's due date is. It is derived from
// the due date at render time and never stored.
type DueStatus string

const (
	DueStatusOverdue  DueStatus = "overdue"
	DueStatusDueToday DueStatus = "due_today"
	DueStatusDueSoon  DueStatus = "due_soon"
	DueStatusNormal   DueStatus = "normal"
	DueStatusNone     DueStatus = "no_due_date"
)

type Todo struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Completed   bool           `gorm:"not null;default:false" json:"completed"`
	DueDate     *time.Time     `json:"due_date"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// IsOverdueAt reports whether the due date has already passed at now.
func (t Todo) IsOverdueAt(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return now.After(*t.DueDate)
}

// IsDueSoonAt reports whether the due date falls within the due-soon window
// (now <= due date <= now + 3 days, both ends inclusive). The window is a
// fixed 72 hours, not 3 calendar days, so it is unaffected by DST shifts.
func (t Todo) IsDueSoonAt(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	limit := now.Add(constants.DueSoonWindowDays * 24 * time.Hour)
	return !now.After(*t.DueDate) && !t.DueDate.After(limit)
}

// IsDueTodayAt reports whether the due date falls on the same calendar date
// as now.
func (t Todo) IsDueTodayAt(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.DueDate.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DueStatusAt classifies the due date relative to now. The checks run in a
// fixed precedence: a todo due earlier today is overdue, not due today.
func (t Todo) DueStatusAt(now time.Time) DueStatus {
	if t.DueDate == nil {
		return DueStatusNone
	}
	switch {
	case t.IsOverdueAt(now):
		return DueStatusOverdue
	case t.IsDueTodayAt(now):
		return DueStatusDueToday
	case t.IsDueSoonAt(now):
		return DueStatusDueSoon
	default:
		return DueStatusNormal
	}
}

// IsOverdue reports whether the todo is overdue right now.
func (t Todo) IsOverdue() bool {
	return t.IsOverdueAt(time.Now())
}

// IsDueSoon reports whether the todo is due within the next 3 days.
func (t Todo) IsDueSoon() bool {
	return t.IsDueSoonAt(time.Now())
}

// IsDueToday reports whether the todo is due today.
func (t Todo) IsDueToday() bool {
	return t.IsDueTodayAt(time.Now())
}

// DueStatus classifies the due date relative to the current time.
func (t Todo) DueStatus() DueStatus {
	return t.DueStatusAt(time.Now())
}
