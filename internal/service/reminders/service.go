package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/domain"
	"jobtrack/internal/domain/models"
	"jobtrack/internal/domain/repositories"
	"jobtrack/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

type reminderService struct {
	store  repositories.BlobStore
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewService creates a new reminder service over the given slot store
func NewService(store repositories.BlobStore, logger *slog.Logger) services.ReminderService {
	return &reminderService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// NewServiceWithClock is NewService with an injected clock for tests
func NewServiceWithClock(store repositories.BlobStore, logger *slog.Logger, now func() time.Time) services.ReminderService {
	return &reminderService{
		store:  store,
		logger: logger,
		now:    now,
	}
}

// ListReminders returns the persisted collection; an absent or unparsable
// slot loads as empty
func (s *reminderService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	return s.loadAll(ctx)
}

// CreateReminder validates and appends a reminder
func (s *reminderService) CreateReminder(ctx context.Context, req *models.CreateReminderRequest) (*models.Reminder, error) {
	err := validation.Errors{
		"jobTitle": validation.Validate(req.JobTitle, validation.Required),
		"date":     validation.Validate(req.Date, validation.Required, validation.Date(dateLayout)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	selected, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, req.Date)
	}

	// Compare against today with the time-of-day zeroed; a reminder dated
	// today is accepted, anything earlier is rejected
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if selected.Before(today) {
		return nil, fmt.Errorf("%w: date %s is in the past", domain.ErrValidation, req.Date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reminders, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	reminder := models.Reminder{
		ID:       s.freshID(reminders),
		JobTitle: req.JobTitle,
		Date:     req.Date,
	}

	reminders = append(reminders, reminder)
	if err := s.saveAll(ctx, reminders); err != nil {
		return nil, err
	}

	s.logger.Info("reminder created", "id", reminder.ID, "date", reminder.Date)
	return &reminder, nil
}

// DeleteReminder filters the reminder out; missing ids are a no-op
func (s *reminderService) DeleteReminder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminders, err := s.loadAll(ctx)
	if err != nil {
		return err
	}

	kept := reminders[:0]
	for _, reminder := range reminders {
		if reminder.ID != id {
			kept = append(kept, reminder)
		}
	}

	if len(kept) == len(reminders) {
		return nil
	}

	if err := s.saveAll(ctx, kept); err != nil {
		return err
	}

	s.logger.Info("reminder deleted", "id", id)
	return nil
}

func (s *reminderService) loadAll(ctx context.Context) ([]models.Reminder, error) {
	data, err := s.store.Get(ctx, config.RemindersSlot)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.Reminder{}, nil
	}

	var reminders []models.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		s.logger.Warn("reminder slot unparsable, treating as empty", "error", err)
		return []models.Reminder{}, nil
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	return reminders, nil
}

func (s *reminderService) saveAll(ctx context.Context, reminders []models.Reminder) error {
	data, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}
	return s.store.Put(ctx, config.RemindersSlot, data)
}

func (s *reminderService) freshID(reminders []models.Reminder) int64 {
	id := s.now().UnixMilli()
	for {
		collision := false
		for _, reminder := range reminders {
			if reminder.ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
		id++
	}
}
