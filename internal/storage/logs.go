package storage

import (
	"context"
	"database/sql"
	"fmt"

	"logbook/internal/core"
)

// ListStudyLogs returns all study logs, newest first.
func (s *Store) ListStudyLogs(ctx context.Context) ([]core.StudyLog, error) {
	const q = `SELECT id, title, duration, date, created_at
	             FROM study_logs
	            ORDER BY created_at DESC, id DESC`

	logs := []core.StudyLog{}
	err := s.Select(ctx, q, func(rows *sql.Rows) error {
		var (
			l    core.StudyLog
			date string
		)
		if err := rows.Scan(&l.ID, &l.Title, &l.DurationSeconds, &date, &l.CreatedAt); err != nil {
			return err
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return fmt.Errorf("stored date: %w", err)
		}
		l.Date = d
		logs = append(logs, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// InsertStudyLog persists a study session with its duration in seconds and
// returns the generated id.
func (s *Store) InsertStudyLog(ctx context.Context, title string, durationSeconds int64, date core.Date) (int64, error) {
	const q = `INSERT INTO study_logs (title, duration, date) VALUES (?, ?, ?)`
	return s.Execute(ctx, q, title, durationSeconds, date.String())
}

// UpdateStudyLog replaces the full record for id and returns the number of
// rows touched (0 when the id does not exist).
func (s *Store) UpdateStudyLog(ctx context.Context, id int64, title string, durationSeconds int64, date core.Date) (int64, error) {
	const q = `UPDATE study_logs SET title = ?, duration = ?, date = ? WHERE id = ?`
	return s.Execute(ctx, q, title, durationSeconds, date.String(), id)
}

// DeleteStudyLog removes the row for id, returning the affected-row count.
func (s *Store) DeleteStudyLog(ctx context.Context, id int64) (int64, error) {
	return s.Execute(ctx, `DELETE FROM study_logs WHERE id = ?`, id)
}

// ListExpenseLogs returns all expense logs, newest first.
func (s *Store) ListExpenseLogs(ctx context.Context) ([]core.ExpenseLog, error) {
	const q = `SELECT id, title, amount, date, created_at
	             FROM expense_logs
	            ORDER BY created_at DESC, id DESC`

	logs := []core.ExpenseLog{}
	err := s.Select(ctx, q, func(rows *sql.Rows) error {
		var (
			l    core.ExpenseLog
			date string
		)
		if err := rows.Scan(&l.ID, &l.Title, &l.Amount, &date, &l.CreatedAt); err != nil {
			return err
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return fmt.Errorf("stored date: %w", err)
		}
		l.Date = d
		logs = append(logs, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// InsertExpenseLog persists an expense and returns the generated id.
func (s *Store) InsertExpenseLog(ctx context.Context, title string, amount int64, date core.Date) (int64, error) {
	const q = `INSERT INTO expense_logs (title, amount, date) VALUES (?, ?, ?)`
	return s.Execute(ctx, q, title, amount, date.String())
}

// UpdateExpenseLog replaces the full record for id.
func (s *Store) UpdateExpenseLog(ctx context.Context, id int64, title string, amount int64, date core.Date) (int64, error) {
	const q = `UPDATE expense_logs SET title = ?, amount = ?, date = ? WHERE id = ?`
	return s.Execute(ctx, q, title, amount, date.String(), id)
}

// DeleteExpenseLog removes the row for id, returning the affected-row count.
func (s *Store) DeleteExpenseLog(ctx context.Context, id int64) (int64, error) {
	return s.Execute(ctx, `DELETE FROM expense_logs WHERE id = ?`, id)
}
