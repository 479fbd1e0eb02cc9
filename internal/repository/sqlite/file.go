package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"jobtrack/internal/domain"
	"jobtrack/internal/domain/models/docsystem"
	"jobtrack/internal/domain/repositories"
	docsysRepo "jobtrack/internal/domain/repositories/docsystem"
)

// SQLiteFileRepository implements the FileRepository interface
type SQLiteFileRepository struct {
	db *sql.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *sql.DB) docsysRepo.FileRepository {
	return &SQLiteFileRepository{db: db}
}

func (r *SQLiteFileRepository) conn(ctx context.Context) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Create inserts a new file and assigns its id
func (r *SQLiteFileRepository) Create(ctx context.Context, file *docsystem.File) error {
	result, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO files (name, size, media_type, payload, folder_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		file.Name,
		file.Size,
		file.MediaType,
		file.Payload,
		file.FolderID,
		file.CreatedAt,
	)
	if err != nil {
		if isStorageError(err) {
			return &domain.StorageUnavailableError{Message: fmt.Sprintf("create file: %v", err)}
		}
		return fmt.Errorf("create file: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create file: read id: %w", err)
	}
	file.ID = id

	return nil
}

// GetByID retrieves a file including its payload
func (r *SQLiteFileRepository) GetByID(ctx context.Context, id int64) (*docsystem.File, error) {
	var file docsystem.File
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT id, name, size, media_type, payload, folder_id, created_at
		FROM files
		WHERE id = ?`, id,
	).Scan(
		&file.ID,
		&file.Name,
		&file.Size,
		&file.MediaType,
		&file.Payload,
		&file.FolderID,
		&file.CreatedAt,
	)

	if err != nil {
		if isNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %d not found", id)}
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return &file, nil
}

// ListByFolder returns all files owned by folderID in insertion order.
// The WHERE clause rides the idx_files_folder_id index, keeping the cost
// proportional to the folder's size rather than the whole table.
func (r *SQLiteFileRepository) ListByFolder(ctx context.Context, folderID int64) ([]docsystem.File, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, `
		SELECT id, name, size, media_type, payload, folder_id, created_at
		FROM files
		WHERE folder_id = ?
		ORDER BY id ASC`, folderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	files := []docsystem.File{}
	for rows.Next() {
		var file docsystem.File
		err := rows.Scan(
			&file.ID,
			&file.Name,
			&file.Size,
			&file.MediaType,
			&file.Payload,
			&file.FolderID,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}

// Delete removes a single file; missing ids are a no-op
func (r *SQLiteFileRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.conn(ctx).ExecContext(ctx,
		`DELETE FROM files WHERE id = ?`, id,
	)
	if err != nil {
		if isStorageError(err) {
			return &domain.StorageUnavailableError{Message: fmt.Sprintf("delete file: %v", err)}
		}
		return fmt.Errorf("delete file: %w", err)
	}

	return nil
}

// DeleteByFolder removes every file owned by folderID via the folder index
func (r *SQLiteFileRepository) DeleteByFolder(ctx context.Context, folderID int64) (int64, error) {
	result, err := r.conn(ctx).ExecContext(ctx,
		`DELETE FROM files WHERE folder_id = ?`, folderID,
	)
	if err != nil {
		if isStorageError(err) {
			return 0, &domain.StorageUnavailableError{Message: fmt.Sprintf("delete folder files: %v", err)}
		}
		return 0, fmt.Errorf("delete folder files: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete folder files: %w", err)
	}

	return affected, nil
}
