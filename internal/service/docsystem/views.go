package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/domain"
	models "jobtrack/internal/domain/models/docsystem"
	docsysSvc "jobtrack/internal/domain/services/docsystem"

	"github.com/google/uuid"
)

type view struct {
	fileID    int64
	expiresAt time.Time
}

type viewService struct {
	files  docsysSvc.FileService
	logger *slog.Logger
	now    func() time.Time
	ttl    time.Duration

	mu    sync.Mutex
	views map[string]view
}

// NewViewService creates a new view-handle service backed by the file
// service. Handles expire after the configured TTL if never closed.
func NewViewService(files docsysSvc.FileService, logger *slog.Logger) docsysSvc.ViewService {
	return &viewService{
		files:  files,
		logger: logger,
		now:    time.Now,
		ttl:    config.ViewHandleTTL,
		views:  make(map[string]view),
	}
}

// OpenView acquires a handle for the file's payload. The file must exist
// at acquisition time.
func (s *viewService) OpenView(ctx context.Context, fileID int64) (*docsysSvc.ViewHandle, error) {
	if _, err := s.files.GetFile(ctx, fileID); err != nil {
		return nil, err
	}

	handle := docsysSvc.ViewHandle{
		Token:     uuid.NewString(),
		FileID:    fileID,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.views[handle.Token] = view{fileID: fileID, expiresAt: handle.ExpiresAt}
	s.mu.Unlock()

	s.logger.Debug("view opened", "file_id", fileID, "token", handle.Token)
	return &handle, nil
}

// ResolveView returns the file for a live handle token
func (s *viewService) ResolveView(ctx context.Context, token string) (*models.File, error) {
	s.mu.Lock()
	v, ok := s.views[token]
	if ok && s.now().After(v.expiresAt) {
		delete(s.views, token)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("view %s not found", token)}
	}

	return s.files.GetFile(ctx, v.fileID)
}

// CloseView releases the handle unconditionally; unknown tokens are a no-op
func (s *viewService) CloseView(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.views, token)
	s.sweepLocked()
	s.mu.Unlock()

	s.logger.Debug("view closed", "token", token)
}

// sweepLocked drops expired handles. Caller holds s.mu.
func (s *viewService) sweepLocked() {
	now := s.now()
	for token, v := range s.views {
		if now.After(v.expiresAt) {
			delete(s.views, token)
		}
	}
}
