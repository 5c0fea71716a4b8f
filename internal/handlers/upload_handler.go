package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"checkin-backend/internal/metrics"
	"checkin-backend/internal/storage"
	"checkin-backend/pkg/utils"
)

// ImageUploader relays an image to object storage. The S3 uploader
// satisfies it; tests substitute a fake.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, contentType, originalName string) (*storage.UploadResult, error)
}

type UploadHandler struct {
	Uploader ImageUploader
}

func NewUploadHandler(uploader ImageUploader) *UploadHandler {
	return &UploadHandler{Uploader: uploader}
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	FileName string `json:"fileName"`
}

// UploadImage handles POST /api/upload-image (multipart field "image")
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// Cap the whole request body; the uploader enforces the same limit
	// on the decoded file.
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadSize+4096)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.Error(w, http.StatusBadRequest, "Image exceeds the maximum upload size", "")
			return
		}
		utils.Error(w, http.StatusBadRequest, "No image file provided", "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "No image file provided", err.Error())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	result, err := h.Uploader.Upload(r.Context(), data, contentType, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotAnImage):
			utils.Error(w, http.StatusBadRequest, "Only image files are allowed", "")
		case errors.Is(err, storage.ErrTooLarge):
			utils.Error(w, http.StatusBadRequest, "Image exceeds the maximum upload size", "")
		case errors.Is(err, storage.ErrUploadTimeout):
			utils.Error(w, http.StatusGatewayTimeout, "Failed to upload image", err.Error())
		default:
			log.Printf("[Upload] %v", err)
			utils.Error(w, http.StatusInternalServerError, "Failed to upload image", err.Error())
		}
		return
	}

	metrics.ImagesUploaded.Inc()
	utils.JSON(w, http.StatusOK, uploadResponse{
		Success:  true,
		ImageURL: result.URL,
		FileName: result.Key,
	})
}
