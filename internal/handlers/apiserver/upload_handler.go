package apiserver

import (
	"fmt"
	"log"
	"net/http"

	"social-go/internal/config"
	"social-go/internal/middleware"
	"social-go/internal/services"
	"social-go/internal/sntypes"
)

const (
	defaultMaxMemory = 32 << 20 // 32 MB max memory for multipart forms
)

// UploadHandler handles profile image uploads. The file lands in the
// storage backend and a UserImage row records it for the profile page.
type UploadHandler struct {
	storageService sntypes.StorageService
	imageService   services.ImageService
	cfg            config.StorageConfig
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(storageService sntypes.StorageService, imageService services.ImageService, cfg config.StorageConfig) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		imageService:   imageService,
		cfg:            cfg,
	}
}

// UploadImageHandler accepts a multipart upload under the "file" key and
// records it as one of the authenticated user's profile images.
func (h *UploadHandler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	maxUploadSize := h.cfg.MaxFileSizeMB << 20
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxMemory
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(defaultMaxMemory); err != nil {
		if err.Error() == "http: request body too large" {
			msg := fmt.Sprintf("file too large, limit is %d MB", maxUploadSize>>20)
			writeJSONError(w, msg, http.StatusRequestEntityTooLarge)
		} else {
			writeJSONError(w, fmt.Sprintf("failed to parse form: %v", err), http.StatusBadRequest)
		}
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			writeJSONError(w, "missing 'file' field", http.StatusBadRequest)
		} else {
			writeJSONError(w, fmt.Sprintf("failed to read file: %v", err), http.StatusBadRequest)
		}
		return
	}
	defer file.Close()

	if handler.Size > maxUploadSize {
		msg := fmt.Sprintf("file too large, limit is %d MB", maxUploadSize>>20)
		writeJSONError(w, msg, http.StatusRequestEntityTooLarge)
		return
	}

	mimeType := handler.Header.Get("Content-Type")
	fileInfo, err := h.storageService.UploadFile(r.Context(), file, handler.Size, handler.Filename, mimeType)
	if err != nil {
		log.Printf("Failed to store uploaded file: %v", err)
		writeJSONError(w, "failed to store file", http.StatusInternalServerError)
		return
	}

	image, err := h.imageService.RecordUpload(r.Context(), userID, fileInfo)
	if err != nil {
		writeServiceError(w, err, "failed to record upload")
		return
	}
	writeJSONResponse(w, http.StatusCreated, image)
}
