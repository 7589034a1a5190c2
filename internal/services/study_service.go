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

// StudyService implements the study-log resource operations.
type StudyService struct {
	store  *storage.Store
	events *amqp.Client
}

func NewStudyService(store *storage.Store, events *amqp.Client) *StudyService {
	return &StudyService{store: store, events: events}
}

// List returns all study logs, newest first.
func (s *StudyService) List(ctx context.Context) ([]core.StudyLog, error) {
	return s.store.ListStudyLogs(ctx)
}

// Create validates and persists a new study session. The incoming duration
// is milliseconds; the stored value is whole seconds, rounded. The returned
// confirmation message embeds the formatted duration.
func (s *StudyService) Create(ctx context.Context, in StudyCreateInput) (string, error) {
	if violations := ValidateStudyCreate(in); len(violations) > 0 {
		return "", &core.ValidationError{Details: violations}
	}

	title := in.EffectiveTitle()
	date, err := resolveDate(in.Date)
	if err != nil {
		return "", &core.ValidationError{Details: []string{msgDateFormat}}
	}

	seconds := core.SecondsFromMillis(*in.DurationMillis)
	id, err := s.store.InsertStudyLog(ctx, title, seconds, date)
	if err != nil {
		return "", err
	}

	metrics.LogsRecorded.WithLabelValues(amqp.KindStudy).Inc()
	s.publish(ctx, amqp.ActionCreated, id)

	return fmt.Sprintf("Recorded %s of study for %s.", core.FormatDurationMillis(*in.DurationMillis), title), nil
}

// Update replaces the full record for id. The duration here is seconds, not
// milliseconds; the create/update asymmetry is intentional and mirrors the
// two API revisions the frontend still uses.
func (s *StudyService) Update(ctx context.Context, id int64, in StudyUpdateInput) (string, error) {
	if violations := ValidateStudyUpdate(in); len(violations) > 0 {
		return "", &core.ValidationError{Details: violations}
	}

	date, err := core.ParseDate(in.Date)
	if err != nil {
		return "", &core.ValidationError{Details: []string{msgDateRequired}}
	}

	affected, err := s.store.UpdateStudyLog(ctx, id, in.Title, *in.DurationSeconds, date)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", &core.NotFoundError{Resource: "study log", Key: fmt.Sprintf("id %d", id)}
	}

	s.publish(ctx, amqp.ActionUpdated, id)
	return fmt.Sprintf("Study log %d updated.", id), nil
}

// Delete removes the log for id; deleting a missing id reports not-found.
func (s *StudyService) Delete(ctx context.Context, id int64) error {
	affected, err := s.store.DeleteStudyLog(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &core.NotFoundError{Resource: "study log", Key: fmt.Sprintf("id %d", id)}
	}

	s.publish(ctx, amqp.ActionDeleted, id)
	return nil
}

// publish is fire-and-forget: a broker fault never fails the request.
func (s *StudyService) publish(ctx context.Context, action string, id int64) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLogEvent(ctx, amqp.KindStudy, action, id); err != nil {
		metrics.EventPublishFailures.Inc()
		slog.ErrorContext(ctx, "Failed to publish study event",
			"action", action, "id", id, "error", err)
	}
}
