package services

import (
	"context"

	"jobtrack/internal/domain/models"
)

// ReminderService handles follow-up reminder business logic
type ReminderService interface {
	// ListReminders returns the persisted collection; absent or corrupt
	// data loads as empty
	ListReminders(ctx context.Context) ([]models.Reminder, error)

	// CreateReminder validates and appends a reminder. The date must not
	// be earlier than today (time-of-day zeroed).
	CreateReminder(ctx context.Context, req *models.CreateReminderRequest) (*models.Reminder, error)

	// DeleteReminder filters the reminder out; missing ids are a no-op
	DeleteReminder(ctx context.Context, id int64) error
}
