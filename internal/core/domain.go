package core

import (
	"fmt"
	"math"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format for the summary month parameter.
	MonthLayout = "2006-01"
)

type (
	// Date is a calendar day without a time component.
	Date struct {
		time.Time
	}

	// StudyLog is a recorded study session. Duration is stored in seconds;
	// the create API accepts milliseconds and converts before persisting.
	StudyLog struct {
		ID              int64
		Title           string
		DurationSeconds int64
		Date            Date
		CreatedAt       string // ISO-8601 UTC, as stored
	}

	// ExpenseLog is a recorded expense in whole yen.
	ExpenseLog struct {
		ID        int64
		Title     string
		Amount    int64
		Date      Date
		CreatedAt string
	}

	// Category is a taxonomy entry for either logs table.
	Category struct {
		ID   int64
		Name string
	}

	// DateTotals is one calendar rollup row: the day's expense total and
	// study hours, zero when one side has no activity.
	DateTotals struct {
		Date         Date
		TotalExpense int64
		TotalHours   float64
	}
)

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// Today returns the current day in the process's local timezone.
func Today() Date {
	now := time.Now()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthRange resolves a YYYY-MM month to its first and last day, inclusive.
func MonthRange(month string) (start, end Date, err error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return Date{}, Date{}, fmt.Errorf("parse month %q: %w", month, err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Date{Time: first}, Date{Time: last}, nil
}

// CurrentMonth returns the current month in local time as YYYY-MM.
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}

// SecondsFromMillis converts a millisecond duration to whole seconds,
// rounding half away from zero.
func SecondsFromMillis(ms int64) int64 {
	return int64(math.Round(float64(ms) / 1000.0))
}

// HoursFromSeconds converts stored seconds to hours rounded to 2 decimals,
// the unit the summary and calendar endpoints report study time in.
func HoursFromSeconds(seconds int64) float64 {
	return math.Round(float64(seconds)/3600.0*100) / 100
}
