package handler

import (
	"io"
	"log/slog"
	"net/http"

	"jobtrack/internal/config"
	docsystem "jobtrack/internal/domain/models/docsystem"
	docsysSvc "jobtrack/internal/domain/services/docsystem"
	"jobtrack/internal/httputil"
)

// FileHandler handles file HTTP requests, including uploads and scoped
// payload views
type FileHandler struct {
	fileService docsysSvc.FileService
	viewService docsysSvc.ViewService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService docsysSvc.FileService, viewService docsysSvc.ViewService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		viewService: viewService,
		logger:      logger,
	}
}

// UploadFiles stores a multipart batch into a folder. Each part named
// "files" becomes one file; partial success is reported with the stored
// subset.
// POST /api/folders/{id}/files
func (h *FileHandler) UploadFiles(w http.ResponseWriter, r *http.Request) {
	folderID, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll()

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "No files in request")
		return
	}

	uploads := make([]docsystem.Upload, 0, len(parts))
	for _, part := range parts {
		f, err := part.Open()
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Unreadable file part: "+part.Filename)
			return
		}
		payload, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "Unreadable file part: "+part.Filename)
			return
		}

		uploads = append(uploads, docsystem.Upload{
			Name:      part.Filename,
			MediaType: part.Header.Get("Content-Type"),
			Payload:   payload,
		})
	}

	stored, err := h.fileService.AddFiles(r.Context(), folderID, uploads)
	if err != nil {
		if len(stored) > 0 {
			// Part of the batch made it in; report what did alongside the failure
			h.logger.Warn("upload batch partially stored",
				"folder_id", folderID,
				"stored", len(stored),
				"error", err,
			)
		}
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, stored)
}

// ListFiles returns the files owned by a folder
// GET /api/folders/{id}/files
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	folderID, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	files, err := h.fileService.ListFiles(r.Context(), folderID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}

// GetFile returns one file's metadata
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.fileService.GetFile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// GetFileContent streams one file's payload
// GET /api/files/{id}/content
func (h *FileHandler) GetFileContent(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.fileService.GetFile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writePayload(w, file)
}

// DeleteFile removes one file; deleting a missing id succeeds
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.fileService.DeleteFile(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// OpenView acquires a scoped handle on a file's payload
// POST /api/files/{id}/views
func (h *FileHandler) OpenView(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	handle, err := h.viewService.OpenView(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, handle)
}

// GetView streams the payload for a live view handle
// GET /api/views/{token}
func (h *FileHandler) GetView(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		httputil.RespondError(w, http.StatusBadRequest, "View token is required")
		return
	}

	file, err := h.viewService.ResolveView(r.Context(), token)
	if err != nil {
		handleError(w, err)
		return
	}

	writePayload(w, file)
}

// CloseView releases a view handle; closing an unknown token succeeds
// DELETE /api/views/{token}
func (h *FileHandler) CloseView(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		httputil.RespondError(w, http.StatusBadRequest, "View token is required")
		return
	}

	h.viewService.CloseView(r.Context(), token)
	w.WriteHeader(http.StatusNoContent)
}

func writePayload(w http.ResponseWriter, file *docsystem.File) {
	mediaType := file.MediaType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", `inline; filename="`+file.Name+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(file.Payload)
}
