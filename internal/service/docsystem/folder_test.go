package docsystem

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"

	"jobtrack/internal/domain"
	models "jobtrack/internal/domain/models/docsystem"
	docsysSvc "jobtrack/internal/domain/services/docsystem"
	"jobtrack/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db      *sql.DB
	folders docsysSvc.FolderService
	files   docsysSvc.FileService
	views   docsysSvc.ViewService
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "documents.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.DiscardHandler)
	folderRepo := sqlite.NewFolderRepository(db)
	fileRepo := sqlite.NewFileRepository(db)
	txManager := sqlite.NewTransactionManager(db)

	fileService := NewFileService(fileRepo, folderRepo, logger)
	return &testEnv{
		db:      db,
		folders: NewFolderService(folderRepo, fileRepo, txManager, logger),
		files:   fileService,
		views:   NewViewService(fileService, logger),
	}
}

func upload(name, mediaType, content string) models.Upload {
	return models.Upload{Name: name, MediaType: mediaType, Payload: []byte(content)}
}

func TestCreateFolderValidation(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	for _, name := range []string{"", "   "} {
		_, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrValidation, "name %q should be rejected", name)
	}

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Resumes"})
	require.NoError(t, err)
	assert.Equal(t, "Resumes", folder.Name)
	assert.NotZero(t, folder.ID)

	folders, err := env.folders.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Resumes", folders[0].Name)
}

func TestCreateFolderTrimsName(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "  Offers  "})
	require.NoError(t, err)
	assert.Equal(t, "Offers", folder.Name)
}

func TestRenameFolder(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Old"})
	require.NoError(t, err)

	renamed, err := env.folders.RenameFolder(ctx, folder.ID, &models.RenameFolderRequest{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)

	folders, err := env.folders.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "New", folders[0].Name)
}

func TestRenameFolderEmptyNameIsNoOp(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Keep"})
	require.NoError(t, err)

	unchanged, err := env.folders.RenameFolder(ctx, folder.ID, &models.RenameFolderRequest{Name: "   "})
	require.NoError(t, err)
	assert.Equal(t, "Keep", unchanged.Name)
}

func TestRenameFolderFailsFastOnMissingID(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	// Never upserts: the miss is an error and nothing is created
	_, err := env.folders.RenameFolder(ctx, 12345, &models.RenameFolderRequest{Name: "Phantom"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	folders, err := env.folders.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestDeleteFolderCascades(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	f, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "F"})
	require.NoError(t, err)
	g, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "G"})
	require.NoError(t, err)

	_, err = env.files.AddFiles(ctx, f.ID, []models.Upload{
		upload("a.pdf", "application/pdf", "aaa"),
		upload("b.pdf", "application/pdf", "bbb"),
		upload("c.pdf", "application/pdf", "ccc"),
	})
	require.NoError(t, err)

	_, err = env.files.AddFiles(ctx, g.ID, []models.Upload{
		upload("keep.txt", "text/plain", "keep"),
	})
	require.NoError(t, err)

	require.NoError(t, env.folders.DeleteFolder(ctx, f.ID))

	// Folder and its files are gone together
	fFiles, err := env.files.ListFiles(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, fFiles)

	folders, err := env.folders.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, g.ID, folders[0].ID)

	// The unrelated folder keeps its file
	gFiles, err := env.files.ListFiles(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, gFiles, 1)
	assert.Equal(t, "keep.txt", gFiles[0].Name)
}

func TestDeleteFolderIdempotent(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Once"})
	require.NoError(t, err)

	require.NoError(t, env.folders.DeleteFolder(ctx, folder.ID))
	// A stale UI retrying the delete sees success, not an error
	require.NoError(t, env.folders.DeleteFolder(ctx, folder.ID))
	require.NoError(t, env.folders.DeleteFolder(ctx, 99999))
}
