// Package services implements the resource operations behind each endpoint:
// payload validation, unit conversion, persistence calls and activity events.
package services

import (
	"strings"

	"logbook/internal/core"
)

// Violation messages. Every failed rule is reported, not just the first.
const (
	msgTitleRequired     = "title is required and must be a non-empty string"
	msgAmountRequired    = "amount is required and must be an integer >= 0"
	msgDurationMillis    = "duration is required and must be an integer of milliseconds >= 0"
	msgDurationSeconds   = "duration is required and must be an integer of seconds >= 0"
	msgDateRequired      = "date is required and must match YYYY-MM-DD"
	msgDateFormat        = "date must match YYYY-MM-DD"
	msgCategoryNameEmpty = "name cannot be empty"
)

type (
	// StudyCreateInput is the POST /api/study_logs payload. Duration is in
	// milliseconds on create. TaskName is the field name older frontend
	// revisions used for the title; it is normalized here.
	StudyCreateInput struct {
		Title          string `json:"title"`
		TaskName       string `json:"taskName"`
		DurationMillis *int64 `json:"duration"`
		Date           string `json:"date"`
	}

	// StudyUpdateInput is the PATCH payload: a full-record replacement with
	// the duration in seconds.
	StudyUpdateInput struct {
		Title           string `json:"title"`
		DurationSeconds *int64 `json:"duration"`
		Date            string `json:"date"`
	}

	// ExpenseCreateInput is the POST /api/expense_logs payload.
	ExpenseCreateInput struct {
		Title  string `json:"title"`
		Amount *int64 `json:"amount"`
		Date   string `json:"date"`
	}

	// ExpenseUpdateInput is the PATCH payload for an expense log.
	ExpenseUpdateInput struct {
		Title  string `json:"title"`
		Amount *int64 `json:"amount"`
		Date   string `json:"date"`
	}

	// CategoryInput is the POST payload for either category table.
	CategoryInput struct {
		Name string `json:"name"`
	}
)

// EffectiveTitle returns the trimmed title, falling back to the legacy
// taskName field.
func (in StudyCreateInput) EffectiveTitle() string {
	if t := strings.TrimSpace(in.Title); t != "" {
		return t
	}
	return strings.TrimSpace(in.TaskName)
}

// ValidateStudyCreate checks a study-log create payload and returns every
// violation found. An empty result means the payload is valid.
func ValidateStudyCreate(in StudyCreateInput) []string {
	var violations []string
	if in.EffectiveTitle() == "" {
		violations = append(violations, msgTitleRequired)
	}
	if in.DurationMillis == nil || *in.DurationMillis < 0 {
		violations = append(violations, msgDurationMillis)
	}
	if in.Date != "" {
		if _, err := core.ParseDate(in.Date); err != nil {
			violations = append(violations, msgDateFormat)
		}
	}
	return violations
}

// ValidateStudyUpdate checks a study-log replacement payload; title,
// duration (seconds) and date are all required.
func ValidateStudyUpdate(in StudyUpdateInput) []string {
	var violations []string
	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, msgTitleRequired)
	}
	if in.DurationSeconds == nil || *in.DurationSeconds < 0 {
		violations = append(violations, msgDurationSeconds)
	}
	if _, err := core.ParseDate(in.Date); err != nil {
		violations = append(violations, msgDateRequired)
	}
	return violations
}

// ValidateExpenseCreate checks an expense-log create payload.
func ValidateExpenseCreate(in ExpenseCreateInput) []string {
	var violations []string
	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, msgTitleRequired)
	}
	if in.Amount == nil || *in.Amount < 0 {
		violations = append(violations, msgAmountRequired)
	}
	if in.Date != "" {
		if _, err := core.ParseDate(in.Date); err != nil {
			violations = append(violations, msgDateFormat)
		}
	}
	return violations
}

// ValidateExpenseUpdate checks an expense-log replacement payload; all
// fields are required.
func ValidateExpenseUpdate(in ExpenseUpdateInput) []string {
	var violations []string
	if strings.TrimSpace(in.Title) == "" {
		violations = append(violations, msgTitleRequired)
	}
	if in.Amount == nil || *in.Amount < 0 {
		violations = append(violations, msgAmountRequired)
	}
	if _, err := core.ParseDate(in.Date); err != nil {
		violations = append(violations, msgDateRequired)
	}
	return violations
}

// ValidateCategoryName checks a category name after trimming.
func ValidateCategoryName(name string) []string {
	if strings.TrimSpace(name) == "" {
		return []string{msgCategoryNameEmpty}
	}
	return nil
}

// resolveDate parses an explicit YYYY-MM-DD date or defaults to today in
// local time when none was supplied. Callers validate first; a parse failure
// here after validation would be a programming error.
func resolveDate(s string) (core.Date, error) {
	if s == "" {
		return core.Today(), nil
	}
	return core.ParseDate(s)
}
