package docsystem

import (
	"context"

	"jobtrack/internal/domain/models/docsystem"
)

// FileRepository defines data access operations for files
type FileRepository interface {
	// Create inserts a new file and assigns its id
	Create(ctx context.Context, file *docsystem.File) error

	// GetByID retrieves a file including its payload
	GetByID(ctx context.Context, id int64) (*docsystem.File, error)

	// ListByFolder returns all files owned by folderID in insertion order.
	// Must go through the folder_id index, not a full scan.
	ListByFolder(ctx context.Context, folderID int64) ([]docsystem.File, error)

	// Delete removes a single file; missing ids are a no-op
	Delete(ctx context.Context, id int64) error

	// DeleteByFolder removes every file owned by folderID and returns the
	// number of rows removed
	DeleteByFolder(ctx context.Context, folderID int64) (int64, error)
}
