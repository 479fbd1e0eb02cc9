package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/domain"
	models "jobtrack/internal/domain/models/docsystem"
	docsysRepo "jobtrack/internal/domain/repositories/docsystem"
	docsysSvc "jobtrack/internal/domain/services/docsystem"

	"github.com/gabriel-vasile/mimetype"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type fileService struct {
	fileRepo   docsysRepo.FileRepository
	folderRepo docsysRepo.FolderRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewFileService creates a new file service
func NewFileService(
	fileRepo docsysRepo.FileRepository,
	folderRepo docsysRepo.FolderRepository,
	logger *slog.Logger,
) docsysSvc.FileService {
	return &fileService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// AddFiles stores each upload as a new file in the folder. Each file
// commits independently: the first failure aborts the remainder and
// already-stored siblings stay stored.
func (s *fileService) AddFiles(ctx context.Context, folderID int64, uploads []models.Upload) ([]models.File, error) {
	// The owning folder must exist before anything is written
	if _, err := s.folderRepo.GetByID(ctx, folderID); err != nil {
		return nil, err
	}

	stored := []models.File{}
	for i, upload := range uploads {
		if err := validateUpload(&upload); err != nil {
			return stored, fmt.Errorf("file %d (%s): %w", i, upload.Name, err)
		}

		mediaType := upload.MediaType
		if mediaType == "" {
			mediaType = mimetype.Detect(upload.Payload).String()
		}

		file := models.File{
			Name:      upload.Name,
			Size:      int64(len(upload.Payload)),
			MediaType: mediaType,
			Payload:   upload.Payload,
			FolderID:  folderID,
			CreatedAt: s.now(),
		}

		if err := s.fileRepo.Create(ctx, &file); err != nil {
			return stored, fmt.Errorf("file %d (%s): %w", i, upload.Name, err)
		}
		stored = append(stored, file)
	}

	s.logger.Info("files added", "folder_id", folderID, "count", len(stored))
	return stored, nil
}

// ListFiles returns the files owned by folderID
func (s *fileService) ListFiles(ctx context.Context, folderID int64) ([]models.File, error) {
	return s.fileRepo.ListByFolder(ctx, folderID)
}

// GetFile fetches one file including its payload. Missing ids surface as
// not-found; reads are the one place a stale id is an error.
func (s *fileService) GetFile(ctx context.Context, id int64) (*models.File, error) {
	return s.fileRepo.GetByID(ctx, id)
}

// DeleteFile removes a single file; missing ids are a no-op
func (s *fileService) DeleteFile(ctx context.Context, id int64) error {
	if err := s.fileRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("file deleted", "id", id)
	return nil
}

func validateUpload(upload *models.Upload) error {
	err := validation.Errors{
		"name": validation.Validate(strings.TrimSpace(upload.Name),
			validation.Required.Error("file name is required"),
			validation.Length(1, config.MaxFileNameLength),
		),
		"payload": validation.Validate(upload.Payload,
			validation.Required.Error("file payload is empty"),
		),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
