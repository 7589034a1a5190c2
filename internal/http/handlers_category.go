package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"logbook/internal/services"
	"logbook/internal/storage"
)

type categoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// handleListCategories serves GET for either taxonomy table.
func (s *Server) handleListCategories(kind storage.CategoryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := s.categories.List(r.Context(), kind)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		views := make([]categoryView, 0, len(cats))
		for _, c := range cats {
			views = append(views, categoryView{ID: c.ID, Name: c.Name})
		}
		writeJSON(w, http.StatusOK, views)
	}
}

// handleCreateCategory answers 201 with the stored row, or 409 when the
// name already exists.
func (s *Server) handleCreateCategory(kind storage.CategoryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.CategoryInput
		if err := decodeJSON(r, &in); err != nil {
			s.writeError(w, r, err)
			return
		}

		cat, err := s.categories.Create(r.Context(), kind, in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, categoryView{ID: cat.ID, Name: cat.Name})
	}
}

// handleDeleteCategory deletes by exact name; chi URL-decodes the route
// parameter.
func (s *Server) handleDeleteCategory(kind storage.CategoryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := s.categories.Delete(r.Context(), kind, name); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
