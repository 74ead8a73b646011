package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func todoDueAt(due *time.Time) *Todo {
	return &Todo{Title: "test", DueDate: due}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestTodo_DueStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate *time.Time
		want    DueStatus
	}{
		{"no due date", nil, DueStatusNone},
		{"one minute ago", timePtr(now.Add(-time.Minute)), DueStatusOverdue},
		{"earlier today", timePtr(now.Add(-3 * time.Hour)), DueStatusOverdue},
		{"far in the past", timePtr(now.AddDate(-1, 0, 0)), DueStatusOverdue},
		{"later today", timePtr(now.Add(5 * time.Hour)), DueStatusDueToday},
		{"tomorrow", timePtr(now.AddDate(0, 0, 1)), DueStatusDueSoon},
		{"exactly three days out", timePtr(now.AddDate(0, 0, 3)), DueStatusDueSoon},
		{"just past three days", timePtr(now.AddDate(0, 0, 3).Add(time.Minute)), DueStatusNormal},
		{"next month", timePtr(now.AddDate(0, 1, 0)), DueStatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := todoDueAt(tt.dueDate)
			require.Equal(t, tt.want, todo.DueStatusAt(now))
		})
	}
}

func TestTodo_DueStatusAt_OverdueWinsOverDueToday(t *testing.T) {
	// A due date earlier today is overdue, never due_today.
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	todo := todoDueAt(timePtr(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)))

	require.True(t, todo.IsOverdueAt(now))
	require.True(t, todo.IsDueTodayAt(now))
	require.Equal(t, DueStatusOverdue, todo.DueStatusAt(now))
}

func TestTodo_DueStatusAt_ExactlyNowIsDueToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	todo := todoDueAt(timePtr(now))

	// now is not strictly after the due date, so it is not overdue yet.
	require.False(t, todo.IsOverdueAt(now))
	require.Equal(t, DueStatusDueToday, todo.DueStatusAt(now))
}

func TestTodo_PredicatesWithoutDueDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	todo := todoDueAt(nil)

	require.False(t, todo.IsOverdueAt(now))
	require.False(t, todo.IsDueSoonAt(now))
	require.False(t, todo.IsDueTodayAt(now))
}

func TestTodo_IsDueSoonAt_FixedWindowAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// Clocks spring forward on 2025-03-09, so three calendar days from this
	// instant is only 71 absolute hours. The window is a fixed 72 hours.
	now := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)

	within := now.Add(71*time.Hour + 30*time.Minute)
	require.True(t, todoDueAt(&within).IsDueSoonAt(now))

	boundary := now.Add(72 * time.Hour)
	require.True(t, todoDueAt(&boundary).IsDueSoonAt(now))

	past := now.Add(72*time.Hour + time.Minute)
	require.False(t, todoDueAt(&past).IsDueSoonAt(now))
}

func TestTodo_IsDueSoonAt_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.True(t, todoDueAt(timePtr(now)).IsDueSoonAt(now))
	require.True(t, todoDueAt(timePtr(now.AddDate(0, 0, 3))).IsDueSoonAt(now))
	require.False(t, todoDueAt(timePtr(now.Add(-time.Second))).IsDueSoonAt(now))
	require.False(t, todoDueAt(timePtr(now.AddDate(0, 0, 3).Add(time.Second))).IsDueSoonAt(now))
}
