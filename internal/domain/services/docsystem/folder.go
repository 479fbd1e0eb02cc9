package docsystem

import (
	"context"

	"jobtrack/internal/domain/models/docsystem"
)

// FolderService handles folder business logic
type FolderService interface {
	// CreateFolder creates a new folder with a trimmed, non-empty name
	CreateFolder(ctx context.Context, req *docsystem.CreateFolderRequest) (*docsystem.Folder, error)

	// ListFolders returns all folders in a deterministic order
	ListFolders(ctx context.Context) ([]docsystem.Folder, error)

	// RenameFolder overwrites the folder's name. An empty new name is a
	// silent no-op; a missing id fails with not-found (never upserts).
	RenameFolder(ctx context.Context, id int64, req *docsystem.RenameFolderRequest) (*docsystem.Folder, error)

	// DeleteFolder removes the folder and every file it owns in one
	// logical operation. Deleting a missing folder is a no-op.
	DeleteFolder(ctx context.Context, id int64) error
}
