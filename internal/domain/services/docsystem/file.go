package docsystem

import (
	"context"
	"time"

	"jobtrack/internal/domain/models/docsystem"
)

// FileService handles file business logic
type FileService interface {
	// AddFiles stores each upload as a new file in the folder. Each file
	// commits independently; the first failure aborts the remainder and
	// already-stored siblings stay. Returns the stored files.
	AddFiles(ctx context.Context, folderID int64, uploads []docsystem.Upload) ([]docsystem.File, error)

	// ListFiles returns the files owned by folderID
	ListFiles(ctx context.Context, folderID int64) ([]docsystem.File, error)

	// GetFile fetches one file including its payload
	GetFile(ctx context.Context, id int64) (*docsystem.File, error)

	// DeleteFile removes a single file; missing ids are a no-op
	DeleteFile(ctx context.Context, id int64) error
}

// ViewHandle is a scoped grant to read one file's payload. It is acquired
// on open and must be released on close; expiry releases it without a
// close call.
type ViewHandle struct {
	Token     string    `json:"token"`
	FileID    int64     `json:"fileId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ViewService manages view handles for file previews
type ViewService interface {
	// OpenView acquires a handle for the file's payload
	OpenView(ctx context.Context, fileID int64) (*ViewHandle, error)

	// ResolveView returns the file for a live handle token
	ResolveView(ctx context.Context, token string) (*docsystem.File, error)

	// CloseView releases the handle; releasing an unknown or already
	// released token is a no-op
	CloseView(ctx context.Context, token string)
}
