package handlers

import (
	"FileShare/internal/config"
	"FileShare/internal/middleware"
	"FileShare/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileHandler обрабатывает список, загрузку и скачивание файлов.
type FileHandler struct {
	FileService     *service.FileService
	ActivityService *service.ActivityService
	Logger          *zap.SugaredLogger
	Config          *config.Config
}

// NewFileHandler создаёт хендлер файлов
func NewFileHandler(fileService *service.FileService, activityService *service.ActivityService, logger *zap.SugaredLogger, cfg *config.Config) *FileHandler {
	return &FileHandler{FileService: fileService, ActivityService: activityService, Logger: logger, Config: cfg}
}

// Index отдаёт список файлов каталога обмена. Доступен и анонимам.
func (h *FileHandler) Index(w http.ResponseWriter, r *http.Request) {
	files, err := h.FileService.List()
	if err != nil {
		h.Logger.Errorw("Index: list failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.ActivityService.Record(r.Context(), actorID(r.Context()), service.ActionViewList, clientIP(r))

	writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

// Upload принимает один файл из multipart-формы (поле file).
// Доступен только вошедшим пользователям; аноним получает 401 до того,
// как что-либо будет записано на диск.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Лимит общего тела запроса
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Upload: missing file part", "error", err)
		http.Error(w, "no file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Warnw("Upload: failed to read file", "error", err)
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	if err := h.FileService.Store(header.Filename, content); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFilename):
			http.Error(w, "no selected file", http.StatusBadRequest)
		case errors.Is(err, service.ErrFileType):
			http.Error(w, "file type is not allowed", http.StatusBadRequest)
		default:
			h.Logger.Errorw("Upload: store failed", "filename", header.Filename, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	h.ActivityService.Record(r.Context(), &uid, service.ActionUpload(header.Filename), clientIP(r))

	redirectWithFlash(w, r, "/", "File uploaded successfully")
}

// Download отдаёт файл вложением; браузер скачивает, а не показывает.
// Отсутствующий файл — не авария: редирект на список с флешом.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	content, err := h.FileService.Retrieve(name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileNotFound), errors.Is(err, service.ErrEmptyFilename):
			redirectWithFlash(w, r, "/", "File not found")
		default:
			h.Logger.Errorw("Download: retrieve failed", "filename", name, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	h.ActivityService.Record(r.Context(), actorID(r.Context()), service.ActionDownload(name), clientIP(r))

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	_, _ = w.Write(content)
}
