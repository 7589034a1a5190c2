package services

import (
	"context"
	"fmt"
	"log/slog"

	"logbook/internal/amqp"
	"logbook/internal/core"
	"logbook/internal/metrics"
	"logbook/internal/storage"
)

// ExpenseService implements the expense-log resource operations.
type ExpenseService struct {
	store  *storage.Store
	events *amqp.Client
}

func NewExpenseService(store *storage.Store, events *amqp.Client) *ExpenseService {
	return &ExpenseService{store: store, events: events}
}

// List returns all expense logs, newest first.
func (s *ExpenseService) List(ctx context.Context) ([]core.ExpenseLog, error) {
	return s.store.ListExpenseLogs(ctx)
}

// Create validates and persists a new expense. The confirmation message
// embeds the recorded amount.
func (s *ExpenseService) Create(ctx context.Context, in ExpenseCreateInput) (string, error) {
	if violations := ValidateExpenseCreate(in); len(violations) > 0 {
		return "", &core.ValidationError{Details: violations}
	}

	date, err := resolveDate(in.Date)
	if err != nil {
		return "", &core.ValidationError{Details: []string{msgDateFormat}}
	}

	id, err := s.store.InsertExpenseLog(ctx, in.Title, *in.Amount, date)
	if err != nil {
		return "", err
	}

	metrics.LogsRecorded.WithLabelValues(amqp.KindExpense).Inc()
	s.publish(ctx, amqp.ActionCreated, id)

	return fmt.Sprintf("Recorded %s at ¥%d.", in.Title, *in.Amount), nil
}

// Update replaces the full record for id.
func (s *ExpenseService) Update(ctx context.Context, id int64, in ExpenseUpdateInput) (string, error) {
	if violations := ValidateExpenseUpdate(in); len(violations) > 0 {
		return "", &core.ValidationError{Details: violations}
	}

	date, err := core.ParseDate(in.Date)
	if err != nil {
		return "", &core.ValidationError{Details: []string{msgDateRequired}}
	}

	affected, err := s.store.UpdateExpenseLog(ctx, id, in.Title, *in.Amount, date)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", &core.NotFoundError{Resource: "expense log", Key: fmt.Sprintf("id %d", id)}
	}

	s.publish(ctx, amqp.ActionUpdated, id)
	return fmt.Sprintf("Expense log %d updated.", id), nil
}

// Delete removes the log for id; deleting a missing id reports not-found.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	affected, err := s.store.DeleteExpenseLog(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &core.NotFoundError{Resource: "expense log", Key: fmt.Sprintf("id %d", id)}
	}

	s.publish(ctx, amqp.ActionDeleted, id)
	return nil
}

func (s *ExpenseService) publish(ctx context.Context, action string, id int64) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLogEvent(ctx, amqp.KindExpense, action, id); err != nil {
		metrics.EventPublishFailures.Inc()
		slog.ErrorContext(ctx, "Failed to publish expense event",
			"action", action, "id", id, "error", err)
	}
}
