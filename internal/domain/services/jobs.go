package services

import (
	"context"

	"jobtrack/internal/domain/models"
)

// JobService handles job record business logic. The backing collection is
// persisted as a single unit: every mutation loads the full collection,
// mutates it in memory, and rewrites it.
type JobService interface {
	// ListJobs returns the persisted collection; absent or corrupt data
	// loads as an empty collection, never an error
	ListJobs(ctx context.Context) ([]models.JobRecord, error)

	// ReplaceAll replaces the entire persisted collection
	ReplaceAll(ctx context.Context, jobs []models.JobRecord) error

	// CreateJob appends a new record with a fresh unique id
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.JobRecord, error)

	// GetJob returns one record by id
	GetJob(ctx context.Context, id int64) (*models.JobRecord, error)

	// UpdateJob overwrites the record with the given id in place
	UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.JobRecord, error)

	// DeleteJob filters the record out of the collection; missing ids are
	// a no-op
	DeleteJob(ctx context.Context, id int64) error
}
