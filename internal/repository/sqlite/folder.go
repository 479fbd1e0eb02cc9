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

// SQLiteFolderRepository implements the FolderRepository interface
type SQLiteFolderRepository struct {
	db *sql.DB
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *sql.DB) docsysRepo.FolderRepository {
	return &SQLiteFolderRepository{db: db}
}

// conn returns the active transaction from the context, or the pool
func (r *SQLiteFolderRepository) conn(ctx context.Context) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Create inserts a new folder and assigns its id
func (r *SQLiteFolderRepository) Create(ctx context.Context, folder *docsystem.Folder) error {
	result, err := r.conn(ctx).ExecContext(ctx,
		`INSERT INTO folders (name) VALUES (?)`,
		folder.Name,
	)
	if err != nil {
		if isStorageError(err) {
			return &domain.StorageUnavailableError{Message: fmt.Sprintf("create folder: %v", err)}
		}
		return fmt.Errorf("create folder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create folder: read id: %w", err)
	}
	folder.ID = id

	return nil
}

// GetByID retrieves a folder by ID
func (r *SQLiteFolderRepository) GetByID(ctx context.Context, id int64) (*docsystem.Folder, error) {
	var folder docsystem.Folder
	err := r.conn(ctx).QueryRowContext(ctx,
		`SELECT id, name FROM folders WHERE id = ?`, id,
	).Scan(&folder.ID, &folder.Name)

	if err != nil {
		if isNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", id)}
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// Rename overwrites the folder's name
func (r *SQLiteFolderRepository) Rename(ctx context.Context, id int64, name string) error {
	result, err := r.conn(ctx).ExecContext(ctx,
		`UPDATE folders SET name = ? WHERE id = ?`, name, id,
	)
	if err != nil {
		if isStorageError(err) {
			return &domain.StorageUnavailableError{Message: fmt.Sprintf("rename folder: %v", err)}
		}
		return fmt.Errorf("rename folder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", id)}
	}

	return nil
}

// Delete removes the folder row. Missing ids are reported via not-found
// so the service can decide whether to treat them as a no-op.
func (r *SQLiteFolderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.conn(ctx).ExecContext(ctx,
		`DELETE FROM folders WHERE id = ?`, id,
	)
	if err != nil {
		if isStorageError(err) {
			return &domain.StorageUnavailableError{Message: fmt.Sprintf("delete folder: %v", err)}
		}
		return fmt.Errorf("delete folder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %d not found", id)}
	}

	return nil
}

// List returns all folders in insertion order
func (r *SQLiteFolderRepository) List(ctx context.Context) ([]docsystem.Folder, error) {
	rows, err := r.conn(ctx).QueryContext(ctx,
		`SELECT id, name FROM folders ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := []docsystem.Folder{}
	for rows.Next() {
		var folder docsystem.Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}
