package storage

import (
	"context"
	"database/sql"
	"fmt"

	"logbook/internal/core"
)

// CategoryKind selects which taxonomy table an operation targets. Table
// names come from this enum, never from request input.
type CategoryKind string

const (
	ExpenseCategories CategoryKind = "expense_categories"
	StudyCategories   CategoryKind = "study_categories"
)

// ListCategories returns all categories of the given kind, ascending by id.
func (s *Store) ListCategories(ctx context.Context, kind CategoryKind) ([]core.Category, error) {
	q := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id ASC`, kind)

	cats := []core.Category{}
	err := s.Select(ctx, q, func(rows *sql.Rows) error {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return err
		}
		cats = append(cats, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// InsertCategory creates a category and returns the stored row. A duplicate
// name surfaces as core.ConflictError via the table's UNIQUE constraint, so
// concurrent creates cannot race past a pre-check.
func (s *Store) InsertCategory(ctx context.Context, kind CategoryKind, name string) (core.Category, error) {
	id, err := s.Execute(ctx, fmt.Sprintf(`INSERT INTO %s (name) VALUES (?)`, kind), name)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Category{}, &core.ConflictError{Name: name}
		}
		return core.Category{}, err
	}

	var cat core.Category
	err = s.Select(ctx, fmt.Sprintf(`SELECT id, name FROM %s WHERE id = ?`, kind), func(rows *sql.Rows) error {
		return rows.Scan(&cat.ID, &cat.Name)
	}, id)
	if err != nil {
		return core.Category{}, err
	}
	return cat, nil
}

// DeleteCategoryByName removes the category with the exact name, returning
// the affected-row count.
func (s *Store) DeleteCategoryByName(ctx context.Context, kind CategoryKind, name string) (int64, error) {
	return s.Execute(ctx, fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, kind), name)
}
