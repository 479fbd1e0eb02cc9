package docsystem

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/domain"
	models "jobtrack/internal/domain/models/docsystem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFilesRequiresFolder(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	_, err := env.files.AddFiles(ctx, 42, []models.Upload{
		upload("orphan.txt", "text/plain", "x"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddFilesCopiesMetadata(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Docs"})
	require.NoError(t, err)

	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		upload("cv.pdf", "application/pdf", "pdf-bytes"),
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	file := stored[0]
	assert.Equal(t, "cv.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.MediaType)
	assert.Equal(t, int64(len("pdf-bytes")), file.Size)
	assert.Equal(t, folder.ID, file.FolderID)
	assert.False(t, file.CreatedAt.IsZero())
	assert.NotZero(t, file.ID)
}

func TestAddFilesSniffsMissingMediaType(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Sniffed"})
	require.NoError(t, err)

	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		{Name: "letter.pdf", Payload: []byte("%PDF-1.4 fake body")},
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Contains(t, stored[0].MediaType, "application/pdf")
}

func TestAddFilesPartialBatch(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Batch"})
	require.NoError(t, err)

	// Second upload is invalid; the first one stays stored
	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		upload("good.txt", "text/plain", "fine"),
		{Name: "empty.txt", MediaType: "text/plain"},
		upload("never.txt", "text/plain", "unreached"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	require.Len(t, stored, 1)
	assert.Equal(t, "good.txt", stored[0].Name)

	files, err := env.files.ListFiles(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestListFilesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Ordered"})
	require.NoError(t, err)

	for _, name := range []string{"first", "second", "third"} {
		_, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
			upload(name, "text/plain", name),
		})
		require.NoError(t, err)
	}

	files, err := env.files.ListFiles(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "first", files[0].Name)
	assert.Equal(t, "second", files[1].Name)
	assert.Equal(t, "third", files[2].Name)
}

func TestGetFileIncludesPayload(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Payloads"})
	require.NoError(t, err)

	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		upload("blob.bin", "application/octet-stream", "raw-bytes"),
	})
	require.NoError(t, err)

	file, err := env.files.GetFile(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("raw-bytes"), file.Payload)

	_, err = env.files.GetFile(ctx, 98765)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteFileNoCascade(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Solo"})
	require.NoError(t, err)

	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		upload("a.txt", "text/plain", "a"),
		upload("b.txt", "text/plain", "b"),
	})
	require.NoError(t, err)

	require.NoError(t, env.files.DeleteFile(ctx, stored[0].ID))
	// Repeat delete is a no-op
	require.NoError(t, env.files.DeleteFile(ctx, stored[0].ID))

	files, err := env.files.ListFiles(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "b.txt", files[0].Name)

	// The folder itself is untouched
	folders, err := env.folders.ListFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 1)
}

func TestViewHandleLifecycle(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Viewer"})
	require.NoError(t, err)

	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		upload("preview.txt", "text/plain", "preview me"),
	})
	require.NoError(t, err)

	handle, err := env.views.OpenView(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, handle.Token)

	file, err := env.views.ResolveView(ctx, handle.Token)
	require.NoError(t, err)
	assert.Equal(t, []byte("preview me"), file.Payload)

	env.views.CloseView(ctx, handle.Token)
	_, err = env.views.ResolveView(ctx, handle.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Closing again is a no-op
	env.views.CloseView(ctx, handle.Token)
}

func TestViewHandleMissingFile(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	_, err := env.views.OpenView(ctx, 4242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViewHandleExpiry(t *testing.T) {
	ctx := context.Background()
	env := setupTest(t)

	folder, err := env.folders.CreateFolder(ctx, &models.CreateFolderRequest{Name: "Expiring"})
	require.NoError(t, err)

	stored, err := env.files.AddFiles(ctx, folder.ID, []models.Upload{
		upload("stale.txt", "text/plain", "stale"),
	})
	require.NoError(t, err)

	svc := env.views.(*viewService)
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	handle, err := env.views.OpenView(ctx, stored[0].ID)
	require.NoError(t, err)

	// Still live just before the TTL elapses
	current = current.Add(svc.ttl - time.Second)
	_, err = env.views.ResolveView(ctx, handle.Token)
	require.NoError(t, err)

	// Expired without any close call
	current = current.Add(2 * time.Second)
	_, err = env.views.ResolveView(ctx, handle.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
