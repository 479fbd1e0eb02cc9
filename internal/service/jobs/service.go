package jobs

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

type jobService struct {
	store  repositories.BlobStore
	logger *slog.Logger
	now    func() time.Time

	// serializes read-modify-write cycles against the slot
	mu sync.Mutex
}

// NewService creates a new job service over the given slot store
func NewService(store repositories.BlobStore, logger *slog.Logger) services.JobService {
	return &jobService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListJobs returns the persisted collection. An absent or unparsable slot
// loads as an empty collection; corrupt data is never surfaced.
func (s *jobService) ListJobs(ctx context.Context) ([]models.JobRecord, error) {
	return s.loadAll(ctx)
}

// ReplaceAll replaces the entire persisted collection
func (s *jobService) ReplaceAll(ctx context.Context, records []models.JobRecord) error {
	seen := make(map[int64]struct{}, len(records))
	for _, record := range records {
		if _, dup := seen[record.ID]; dup {
			return fmt.Errorf("duplicate job id %d: %w", record.ID, domain.ErrValidation)
		}
		seen[record.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAll(ctx, records)
}

// CreateJob appends a new record with a fresh unique id
func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.JobRecord, error) {
	if err := validateJobInput(req.Position, req.Company, string(req.Status), req.Date, req.Notes); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	record := models.JobRecord{
		ID:        s.freshID(records),
		Position:  req.Position,
		Company:   req.Company,
		Status:    status,
		Date:      req.Date,
		Notes:     req.Notes,
		Documents: req.Documents,
	}
	if record.Documents == nil {
		record.Documents = []models.JobDocument{}
	}

	records = append(records, record)
	if err := s.saveAll(ctx, records); err != nil {
		return nil, err
	}

	s.logger.Info("job created",
		"id", record.ID,
		"position", record.Position,
		"company", record.Company,
		"status", record.Status,
	)

	return &record, nil
}

// GetJob returns one record by id
func (s *jobService) GetJob(ctx context.Context, id int64) (*models.JobRecord, error) {
	records, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}

	return nil, &domain.NotFoundError{Message: fmt.Sprintf("job %d not found", id)}
}

// UpdateJob overwrites the record with the given id in place
func (s *jobService) UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.JobRecord, error) {
	if err := validateJobInput(req.Position, req.Company, string(req.Status), req.Date, req.Notes); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}

		records[i].Position = req.Position
		records[i].Company = req.Company
		records[i].Status = req.Status
		records[i].Date = req.Date
		records[i].Notes = req.Notes
		records[i].Documents = req.Documents
		if records[i].Documents == nil {
			records[i].Documents = []models.JobDocument{}
		}

		if err := s.saveAll(ctx, records); err != nil {
			return nil, err
		}

		s.logger.Info("job updated", "id", id, "status", records[i].Status)
		updated := records[i]
		return &updated, nil
	}

	return nil, &domain.NotFoundError{Message: fmt.Sprintf("job %d not found", id)}
}

// DeleteJob filters the record out of the collection; missing ids are a
// no-op so a stale UI can retry safely
func (s *jobService) DeleteJob(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}

	if len(kept) == len(records) {
		return nil
	}

	if err := s.saveAll(ctx, kept); err != nil {
		return err
	}

	s.logger.Info("job deleted", "id", id)
	return nil
}

func (s *jobService) loadAll(ctx context.Context) ([]models.JobRecord, error) {
	data, err := s.store.Get(ctx, config.JobsSlot)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.JobRecord{}, nil
	}

	var records []models.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Treat an unparsable slot as empty rather than failing the caller
		s.logger.Warn("job slot unparsable, treating as empty", "error", err)
		return []models.JobRecord{}, nil
	}
	if records == nil {
		records = []models.JobRecord{}
	}

	return records, nil
}

func (s *jobService) saveAll(ctx context.Context, records []models.JobRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode jobs: %w", err)
	}
	return s.store.Put(ctx, config.JobsSlot, data)
}

// freshID derives an id from the current wall clock in milliseconds,
// bumping past any existing id on collision
func (s *jobService) freshID(records []models.JobRecord) int64 {
	id := s.now().UnixMilli()
	for {
		collision := false
		for _, record := range records {
			if record.ID == id {
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

func validateJobInput(position, company, status, date, notes string) error {
	err := validation.Errors{
		"position": validation.Validate(position,
			validation.Required,
			validation.Length(1, config.MaxPositionLength),
		),
		"company": validation.Validate(company,
			validation.Required,
			validation.Length(1, config.MaxPositionLength),
		),
		"notes": validation.Validate(notes,
			validation.Length(0, config.MaxNotesLength),
		),
		"date": validation.Validate(date,
			validation.Date(dateLayout),
		),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if status != "" && !models.Status(status).Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	return nil
}
