package storage

import (
	"context"
	"database/sql"
	"fmt"

	"logbook/internal/core"
)

// SumExpenseRange sums expense amounts over dates in [start, end] inclusive.
// No matching rows sums to zero, never null.
func (s *Store) SumExpenseRange(ctx context.Context, start, end core.Date) (int64, error) {
	const q = `SELECT COALESCE(SUM(amount), 0) FROM expense_logs WHERE date BETWEEN ? AND ?`
	return s.sumOne(ctx, q, start.String(), end.String())
}

// SumExpenseAll sums expense amounts over the whole table.
func (s *Store) SumExpenseAll(ctx context.Context) (int64, error) {
	return s.sumOne(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expense_logs`)
}

// SumStudyRange sums study durations (seconds) over dates in [start, end].
func (s *Store) SumStudyRange(ctx context.Context, start, end core.Date) (int64, error) {
	const q = `SELECT COALESCE(SUM(duration), 0) FROM study_logs WHERE date BETWEEN ? AND ?`
	return s.sumOne(ctx, q, start.String(), end.String())
}

// SumStudyAll sums study durations (seconds) over the whole table.
func (s *Store) SumStudyAll(ctx context.Context) (int64, error) {
	return s.sumOne(ctx, `SELECT COALESCE(SUM(duration), 0) FROM study_logs`)
}

func (s *Store) sumOne(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	err := s.Select(ctx, query, func(rows *sql.Rows) error {
		return rows.Scan(&total)
	}, args...)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CalendarTotals computes per-date expense and study-hour totals across every
// date that has activity in either table, ordered by date. Inactive dates are
// not included; the calendar UI fills its own gaps.
func (s *Store) CalendarTotals(ctx context.Context) ([]core.DateTotals, error) {
	const q = `
SELECT dates.date AS date,
       COALESCE(expense.total, 0) AS total_expense,
       ROUND(COALESCE(study.total, 0) / 3600.0, 2) AS total_hours
FROM (
  SELECT date FROM expense_logs
  UNION
  SELECT date FROM study_logs
) dates
LEFT JOIN (
  SELECT date, SUM(amount) AS total
  FROM expense_logs
  GROUP BY date
) expense ON dates.date = expense.date
LEFT JOIN (
  SELECT date, SUM(duration) AS total
  FROM study_logs
  GROUP BY date
) study ON dates.date = study.date
ORDER BY dates.date`

	totals := []core.DateTotals{}
	err := s.Select(ctx, q, func(rows *sql.Rows) error {
		var (
			t    core.DateTotals
			date string
		)
		if err := rows.Scan(&date, &t.TotalExpense, &t.TotalHours); err != nil {
			return err
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return fmt.Errorf("stored date: %w", err)
		}
		t.Date = d
		totals = append(totals, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// ExpensesOn returns the expense entries for one exact date, natural row order.
func (s *Store) ExpensesOn(ctx context.Context, date core.Date) ([]core.ExpenseLog, error) {
	const q = `SELECT id, title, amount FROM expense_logs WHERE date = ?`

	logs := []core.ExpenseLog{}
	err := s.Select(ctx, q, func(rows *sql.Rows) error {
		var l core.ExpenseLog
		if err := rows.Scan(&l.ID, &l.Title, &l.Amount); err != nil {
			return err
		}
		l.Date = date
		logs = append(logs, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// StudiesOn returns the study entries for one exact date, natural row order.
func (s *Store) StudiesOn(ctx context.Context, date core.Date) ([]core.StudyLog, error) {
	const q = `SELECT id, title, duration FROM study_logs WHERE date = ?`

	logs := []core.StudyLog{}
	err := s.Select(ctx, q, func(rows *sql.Rows) error {
		var l core.StudyLog
		if err := rows.Scan(&l.ID, &l.Title, &l.DurationSeconds); err != nil {
			return err
		}
		l.Date = date
		logs = append(logs, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}
