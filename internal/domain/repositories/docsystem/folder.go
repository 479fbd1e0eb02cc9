package docsystem

import (
	"context"

	"jobtrack/internal/domain/models/docsystem"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create inserts a new folder and assigns its id
	Create(ctx context.Context, folder *docsystem.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id int64) (*docsystem.Folder, error)

	// Rename overwrites the folder's name
	Rename(ctx context.Context, id int64, name string) error

	// Delete removes the folder row only; cascading to files is the
	// service's responsibility, inside one transaction
	Delete(ctx context.Context, id int64) error

	// List returns all folders in insertion order
	List(ctx context.Context) ([]docsystem.Folder, error)
}
