package http

import (
	"net/http"

	"logbook/internal/services"
)

type expenseLogView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) handleListExpenseLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.expenses.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]expenseLogView, 0, len(logs))
	for _, l := range logs {
		views = append(views, expenseLogView{
			ID:        l.ID,
			Title:     l.Title,
			Amount:    l.Amount,
			Date:      l.Date.String(),
			CreatedAt: l.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCreateExpenseLog(w http.ResponseWriter, r *http.Request) {
	var in services.ExpenseCreateInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	msg, err := s.expenses.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

func (s *Server) handleUpdateExpenseLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in services.ExpenseUpdateInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	msg, err := s.expenses.Update(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleDeleteExpenseLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.expenses.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
