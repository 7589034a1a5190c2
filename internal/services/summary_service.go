package services

import (
	"context"

	"logbook/internal/core"
	"logbook/internal/storage"

	"golang.org/x/sync/errgroup"
)

const (
	msgMonthFormat = "month must match YYYY-MM"
)

type (
	// ExpenseSummary holds the monthly and all-time expense totals in whole
	// yen.
	ExpenseSummary struct {
		MonthlyTotal int64
		GrandTotal   int64
	}

	// StudySummary holds the monthly and all-time study totals in hours,
	// rounded to two decimals.
	StudySummary struct {
		MonthlyHours float64
		GrandHours   float64
	}

	// DailyDetail joins both log tables for a single calendar day.
	DailyDetail struct {
		Expenses []core.ExpenseLog
		Studies  []core.StudyLog
	}
)

// SummaryService computes the aggregate views: monthly/grand summaries, the
// calendar rollup and the per-day detail join.
type SummaryService struct {
	store *storage.Store
}

func NewSummaryService(store *storage.Store) *SummaryService {
	return &SummaryService{store: store}
}

// ExpenseSummary sums expense amounts for the given YYYY-MM month (empty
// means the current month in local time) and for the whole table. The two
// sums run concurrently; each statement pins its own connection.
func (s *SummaryService) ExpenseSummary(ctx context.Context, month string) (ExpenseSummary, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return ExpenseSummary{}, err
	}

	var out ExpenseSummary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.store.SumExpenseRange(ctx, start, end)
		out.MonthlyTotal = total
		return err
	})
	g.Go(func() error {
		total, err := s.store.SumExpenseAll(ctx)
		out.GrandTotal = total
		return err
	})
	if err := g.Wait(); err != nil {
		return ExpenseSummary{}, err
	}
	return out, nil
}

// StudySummary sums study durations for the month and overall, converted to
// hours with two decimals.
func (s *SummaryService) StudySummary(ctx context.Context, month string) (StudySummary, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return StudySummary{}, err
	}

	var monthlySecs, grandSecs int64
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.store.SumStudyRange(ctx, start, end)
		monthlySecs = total
		return err
	})
	g.Go(func() error {
		total, err := s.store.SumStudyAll(ctx)
		grandSecs = total
		return err
	})
	if err := g.Wait(); err != nil {
		return StudySummary{}, err
	}

	return StudySummary{
		MonthlyHours: core.HoursFromSeconds(monthlySecs),
		GrandHours:   core.HoursFromSeconds(grandSecs),
	}, nil
}

// Calendar returns per-date totals for every date with any activity.
func (s *SummaryService) Calendar(ctx context.Context) ([]core.DateTotals, error) {
	return s.store.CalendarTotals(ctx)
}

// DailyDetail returns the expense and study entries for one exact date. A
// date that fails to parse is a validation error; a day with no activity is
// two empty lists, not an error.
func (s *SummaryService) DailyDetail(ctx context.Context, date string) (DailyDetail, error) {
	d, err := core.ParseDate(date)
	if err != nil {
		return DailyDetail{}, &core.ValidationError{Details: []string{msgDateFormat}}
	}

	var out DailyDetail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := s.store.ExpensesOn(ctx, d)
		out.Expenses = expenses
		return err
	})
	g.Go(func() error {
		studies, err := s.store.StudiesOn(ctx, d)
		out.Studies = studies
		return err
	})
	if err := g.Wait(); err != nil {
		return DailyDetail{}, err
	}
	return out, nil
}

func monthRange(month string) (core.Date, core.Date, error) {
	if month == "" {
		month = core.CurrentMonth()
	}
	start, end, err := core.MonthRange(month)
	if err != nil {
		return core.Date{}, core.Date{}, &core.ValidationError{Details: []string{msgMonthFormat}}
	}
	return start, end, nil
}
