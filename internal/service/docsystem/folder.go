package docsystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"jobtrack/internal/config"
	"jobtrack/internal/domain"
	models "jobtrack/internal/domain/models/docsystem"
	"jobtrack/internal/domain/repositories"
	docsysRepo "jobtrack/internal/domain/repositories/docsystem"
	docsysSvc "jobtrack/internal/domain/services/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type folderService struct {
	folderRepo docsysRepo.FolderRepository
	fileRepo   docsysRepo.FileRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger

	// per-folder guard so two cascades against the same id never interleave
	guardsMu sync.Mutex
	guards   map[int64]*sync.Mutex
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo docsysRepo.FolderRepository,
	fileRepo docsysRepo.FileRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) docsysSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
		txManager:  txManager,
		logger:     logger,
		guards:     make(map[int64]*sync.Mutex),
	}
}

// CreateFolder creates a new folder with a trimmed, non-empty name
func (s *folderService) CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error) {
	name := strings.TrimSpace(req.Name)

	err := validation.Validate(name,
		validation.Required.Error("folder name is required"),
		validation.Length(1, config.MaxFolderNameLength),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder := &models.Folder{Name: name}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "id", folder.ID, "name", folder.Name)
	return folder, nil
}

// ListFolders returns all folders in insertion order
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folderRepo.List(ctx)
}

// RenameFolder overwrites the folder's name. An empty new name is a silent
// no-op; a missing id fails with not-found rather than upserting a folder
// under that id.
func (s *folderService) RenameFolder(ctx context.Context, id int64, req *models.RenameFolderRequest) (*models.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		// Matches the UI contract: submitting an empty rename leaves the
		// folder untouched
		return s.folderRepo.GetByID(ctx, id)
	}

	if err := validation.Validate(name, validation.Length(1, config.MaxFolderNameLength)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.folderRepo.Rename(ctx, id, name); err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", id, "name", name)
	return &models.Folder{ID: id, Name: name}, nil
}

// DeleteFolder removes the folder and every file it owns in one
// transaction. A caller can never observe the folder gone with orphaned
// files remaining, or vice versa. Deleting a missing folder is a no-op.
func (s *folderService) DeleteFolder(ctx context.Context, id int64) error {
	guard := s.guard(id)
	guard.Lock()
	defer guard.Unlock()

	var removed int64
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.folderRepo.Delete(txCtx, id); err != nil {
			return err
		}

		n, err := s.fileRepo.DeleteByFolder(txCtx, id)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Already gone; stale UIs retry deletes
			return nil
		}
		return err
	}

	s.logger.Info("folder deleted", "id", id, "files_removed", removed)
	return nil
}

// guard returns the mutex for a folder id, creating it on first use
func (s *folderService) guard(id int64) *sync.Mutex {
	s.guardsMu.Lock()
	defer s.guardsMu.Unlock()

	if m, ok := s.guards[id]; ok {
		return m
	}
	m := &sync.Mutex{}
	s.guards[id] = m
	return m
}
