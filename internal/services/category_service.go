package services

import (
	"context"
	"fmt"
	"strings"

	"logbook/internal/core"
	"logbook/internal/storage"
)

// CategoryService implements both category taxonomies; the kind parameter
// picks the table.
type CategoryService struct {
	store *storage.Store
}

func NewCategoryService(store *storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

// List returns all categories of the kind, ascending by id.
func (s *CategoryService) List(ctx context.Context, kind storage.CategoryKind) ([]core.Category, error) {
	return s.store.ListCategories(ctx, kind)
}

// Create validates and persists a category. A duplicate name surfaces as
// core.ConflictError straight from the store's uniqueness constraint.
func (s *CategoryService) Create(ctx context.Context, kind storage.CategoryKind, in CategoryInput) (core.Category, error) {
	name := strings.TrimSpace(in.Name)
	if violations := ValidateCategoryName(name); len(violations) > 0 {
		return core.Category{}, &core.ValidationError{Details: violations}
	}
	return s.store.InsertCategory(ctx, kind, name)
}

// Delete removes the category with the exact name.
func (s *CategoryService) Delete(ctx context.Context, kind storage.CategoryKind, name string) error {
	affected, err := s.store.DeleteCategoryByName(ctx, kind, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &core.NotFoundError{Resource: "category", Key: fmt.Sprintf("name %q", name)}
	}
	return nil
}
