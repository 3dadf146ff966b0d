package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/charitha1008/Mini-Project/internal/service"
)

const maxUploadSize = 10 << 20 // 10MB

type UploadService interface {
	ImportCSV(r io.Reader) (service.ImportReport, error)
}

type UploadHandler struct {
	uploadService UploadService
}

func NewUploadHandler(uploadService UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadCSV imports every file sent in the "files" form field, in order.
func (h *UploadHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad multipart request", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		http.Error(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	reports := make(map[string]service.ImportReport, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			log.Println("Error opening file:", err)
			http.Error(w, "Failed to read "+header.Filename, http.StatusBadRequest)
			return
		}

		report, err := h.uploadService.ImportCSV(file)
		file.Close()
		reports[header.Filename] = report
		if err != nil {
			log.Printf("Error importing %s: %v", header.Filename, err)
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   "import failed for " + header.Filename,
				"reports": reports,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Files imported",
		"reports": reports,
	})
}
