package http

import (
	"net/http"
)

type (
	expenseSummaryView struct {
		MonthlyTotal int64 `json:"monthly_total"`
		GrandTotal   int64 `json:"grand_total"`
	}

	studySummaryView struct {
		MonthlyTotalHours float64 `json:"monthly_total_hours"`
		GrandTotalHours   float64 `json:"grand_total_hours"`
	}

	expenseEntryView struct {
		ID       int64  `json:"id"`
		Amount   int64  `json:"amount"`
		Category string `json:"category"`
	}

	studyEntryView struct {
		ID              int64  `json:"id"`
		DurationSeconds int64  `json:"duration_seconds"`
		Category        string `json:"category"`
	}

	dailyDetailView struct {
		Expenses []expenseEntryView `json:"expenses"`
		Studies  []studyEntryView   `json:"studies"`
	}

	calendarEntryView struct {
		Date         string  `json:"date"`
		TotalExpense int64   `json:"total_expense"`
		TotalHours   float64 `json:"total_hours"`
	}
)

func (s *Server) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summaries.ExpenseSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expenseSummaryView{
		MonthlyTotal: sum.MonthlyTotal,
		GrandTotal:   sum.GrandTotal,
	})
}

func (s *Server) handleStudySummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summaries.StudySummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, studySummaryView{
		MonthlyTotalHours: sum.MonthlyHours,
		GrandTotalHours:   sum.GrandHours,
	})
}

func (s *Server) handleDailyDetails(w http.ResponseWriter, r *http.Request) {
	detail, err := s.summaries.DailyDetail(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view := dailyDetailView{
		Expenses: make([]expenseEntryView, 0, len(detail.Expenses)),
		Studies:  make([]studyEntryView, 0, len(detail.Studies)),
	}
	for _, e := range detail.Expenses {
		view.Expenses = append(view.Expenses, expenseEntryView{
			ID:       e.ID,
			Amount:   e.Amount,
			Category: e.Title,
		})
	}
	for _, st := range detail.Studies {
		view.Studies = append(view.Studies, studyEntryView{
			ID:              st.ID,
			DurationSeconds: st.DurationSeconds,
			Category:        st.Title,
		})
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCalendarData(w http.ResponseWriter, r *http.Request) {
	totals, err := s.summaries.Calendar(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]calendarEntryView, 0, len(totals))
	for _, t := range totals {
		views = append(views, calendarEntryView{
			Date:         t.Date.String(),
			TotalExpense: t.TotalExpense,
			TotalHours:   t.TotalHours,
		})
	}
	writeJSON(w, http.StatusOK, views)
}
