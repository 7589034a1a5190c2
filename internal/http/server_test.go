package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applog "logbook/internal/log"
	"logbook/internal/services"
	"logbook/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "logbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := applog.New(slog.LevelError)
	return NewServer(
		"127.0.0.1:0",
		services.NewStudyService(store, nil),
		services.NewExpenseService(store, nil),
		services.NewCategoryService(store),
		services.NewSummaryService(store),
		logger,
	)
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestCreateThenListExpenseLog(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/expense_logs",
		`{"title": "Lunch", "amount": 1200, "date": "2025-06-15"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Recorded Lunch at ¥1200.", created["message"])

	w = do(t, srv, http.MethodGet, "/api/expense_logs", "")
	require.Equal(t, http.StatusOK, w.Code)

	logs := decodeBody[[]expenseLogView](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, "Lunch", logs[0].Title)
	assert.Equal(t, int64(1200), logs[0].Amount)
	assert.Equal(t, "2025-06-15", logs[0].Date)
	assert.NotEmpty(t, logs[0].CreatedAt)
}

func TestCreateExpenseLogInvalid(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"amount": 500}`},
		{"negative amount", `{"title": "Lunch", "amount": -1}`},
		{"missing everything", `{}`},
		{"bad date", `{"title": "Lunch", "amount": 500, "date": "15-06-2025"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, "/api/expense_logs", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			body := decodeBody[errorBody](t, w)
			assert.Equal(t, "invalid parameters", body.Error)
			assert.NotEmpty(t, body.Details)
		})
	}

	w := do(t, srv, http.MethodGet, "/api/expense_logs", "")
	assert.Empty(t, decodeBody[[]expenseLogView](t, w))
}

func TestStudyLogDurationUnits(t *testing.T) {
	srv := newTestServer(t)

	// 5400000 ms comes back as 5400 stored seconds.
	w := do(t, srv, http.MethodPost, "/api/study_logs",
		`{"title": "Reading", "duration": 5400000, "date": "2025-06-15"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Recorded 1h30m of study for Reading.",
		decodeBody[map[string]string](t, w)["message"])

	w = do(t, srv, http.MethodGet, "/api/study_logs", "")
	logs := decodeBody[[]studyLogView](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(5400), logs[0].DurationSeconds)
}

func TestStudyLogTaskNameAlias(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/study_logs",
		`{"taskName": "Kanji", "duration": 60000}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodGet, "/api/study_logs", "")
	logs := decodeBody[[]studyLogView](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, "Kanji", logs[0].Title)
}

func TestUpdateMissingLog(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPatch, "/api/study_logs/41",
		`{"title": "Reading", "duration": 1800, "date": "2025-06-15"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, srv, http.MethodPatch, "/api/expense_logs/41",
		`{"title": "Lunch", "amount": 900, "date": "2025-06-15"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateExpenseLog(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/expense_logs",
		`{"title": "Lunch", "amount": 1200, "date": "2025-06-15"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodGet, "/api/expense_logs", "")
	logs := decodeBody[[]expenseLogView](t, w)
	require.Len(t, logs, 1)

	w = do(t, srv, http.MethodPatch, fmt.Sprintf("/api/expense_logs/%d", logs[0].ID),
		`{"title": "Dinner", "amount": 2400, "date": "2025-06-16"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("Expense log %d updated.", logs[0].ID),
		decodeBody[map[string]string](t, w)["message"])

	w = do(t, srv, http.MethodGet, "/api/expense_logs", "")
	logs = decodeBody[[]expenseLogView](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, "Dinner", logs[0].Title)
	assert.Equal(t, int64(2400), logs[0].Amount)
	assert.Equal(t, "2025-06-16", logs[0].Date)
}

func TestDeleteLogTwice(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/study_logs",
		`{"title": "Reading", "duration": 60000}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodGet, "/api/study_logs", "")
	logs := decodeBody[[]studyLogView](t, w)
	require.Len(t, logs, 1)

	path := fmt.Sprintf("/api/study_logs/%d", logs[0].ID)
	w = do(t, srv, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, srv, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/expense_categories", `{"name": "Food"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[categoryView](t, w)
	assert.Equal(t, "Food", created.Name)
	assert.NotZero(t, created.ID)

	w = do(t, srv, http.MethodPost, "/api/expense_categories", `{"name": "Food"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decodeBody[errorBody](t, w).Error, "Food")

	w = do(t, srv, http.MethodGet, "/api/expense_categories", "")
	cats := decodeBody[[]categoryView](t, w)
	require.Len(t, cats, 1)

	// Same name is free in the other taxonomy.
	w = do(t, srv, http.MethodPost, "/api/study_categories", `{"name": "Food"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodDelete, "/api/expense_categories/Food", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, srv, http.MethodDelete, "/api/expense_categories/Food", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExpenseSummary(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"title": "Lunch", "amount": 1000, "date": "2025-06-01"}`,
		`{"title": "Dinner", "amount": 2000, "date": "2025-06-30"}`,
		`{"title": "Rent", "amount": 50000, "date": "2025-07-01"}`,
	} {
		w := do(t, srv, http.MethodPost, "/api/expense_logs", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, srv, http.MethodGet, "/api/expense_summary?month=2025-06", "")
	require.Equal(t, http.StatusOK, w.Code)
	sum := decodeBody[expenseSummaryView](t, w)
	assert.Equal(t, int64(3000), sum.MonthlyTotal)
	assert.Equal(t, int64(53000), sum.GrandTotal)

	// An inactive month keeps zero monthly against the standing grand total.
	w = do(t, srv, http.MethodGet, "/api/expense_summary?month=2024-01", "")
	sum = decodeBody[expenseSummaryView](t, w)
	assert.Equal(t, int64(0), sum.MonthlyTotal)
	assert.Equal(t, int64(53000), sum.GrandTotal)

	w = do(t, srv, http.MethodGet, "/api/expense_summary?month=June", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudySummaryHours(t *testing.T) {
	srv := newTestServer(t)

	// 90 minutes in June.
	w := do(t, srv, http.MethodPost, "/api/study_logs",
		`{"title": "Reading", "duration": 5400000, "date": "2025-06-15"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, srv, http.MethodGet, "/api/study_summary?month=2025-06", "")
	require.Equal(t, http.StatusOK, w.Code)
	sum := decodeBody[studySummaryView](t, w)
	assert.Equal(t, 1.5, sum.MonthlyTotalHours)
	assert.Equal(t, 1.5, sum.GrandTotalHours)
}

func TestDailyDetails(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/daily_details?date=2025-06-15", "")
	require.Equal(t, http.StatusOK, w.Code)
	empty := decodeBody[dailyDetailView](t, w)
	assert.NotNil(t, empty.Expenses)
	assert.NotNil(t, empty.Studies)
	assert.Empty(t, empty.Expenses)
	assert.Empty(t, empty.Studies)

	for _, c := range []struct{ path, body string }{
		{"/api/expense_logs", `{"title": "Lunch", "amount": 1200, "date": "2025-06-15"}`},
		{"/api/study_logs", `{"title": "Reading", "duration": 5400000, "date": "2025-06-15"}`},
		{"/api/expense_logs", `{"title": "Rent", "amount": 50000, "date": "2025-06-16"}`},
	} {
		resp := do(t, srv, http.MethodPost, c.path, c.body)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	w = do(t, srv, http.MethodGet, "/api/daily_details?date=2025-06-15", "")
	detail := decodeBody[dailyDetailView](t, w)
	require.Len(t, detail.Expenses, 1)
	assert.Equal(t, "Lunch", detail.Expenses[0].Category)
	assert.Equal(t, int64(1200), detail.Expenses[0].Amount)
	require.Len(t, detail.Studies, 1)
	assert.Equal(t, "Reading", detail.Studies[0].Category)
	assert.Equal(t, int64(5400), detail.Studies[0].DurationSeconds)

	w = do(t, srv, http.MethodGet, "/api/daily_details?date=15-06-2025", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarData(t *testing.T) {
	srv := newTestServer(t)

	for _, c := range []struct{ path, body string }{
		{"/api/expense_logs", `{"title": "Lunch", "amount": 1200, "date": "2025-06-15"}`},
		{"/api/study_logs", `{"title": "Reading", "duration": 5400000, "date": "2025-06-16"}`},
	} {
		resp := do(t, srv, http.MethodPost, c.path, c.body)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	w := do(t, srv, http.MethodGet, "/api/calendar_data", "")
	require.Equal(t, http.StatusOK, w.Code)

	entries := decodeBody[[]calendarEntryView](t, w)
	require.Len(t, entries, 2)
	assert.Equal(t, calendarEntryView{Date: "2025-06-15", TotalExpense: 1200}, entries[0])
	assert.Equal(t, calendarEntryView{Date: "2025-06-16", TotalHours: 1.5}, entries[1])
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/expense_logs", `{"title": "Lunch",`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody[errorBody](t, w)
	assert.Equal(t, "invalid parameters", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", decodeBody[errorBody](t, w).Error)

	// Unsupported methods get the same 404 as unknown paths.
	w = do(t, srv, http.MethodPut, "/api/expense_logs", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSHeader(t *testing.T) {
	srv := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/api/expense_logs", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, r)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestHealthcheck(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/healthcheck", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, w)["status"])
}
