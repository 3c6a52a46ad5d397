package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

// allowedExtensions for uploaded documents and transfer proofs.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// formUpload pulls one optional file field out of an already-parsed
// multipart form. A missing field returns (nil, nil).
func formUpload(r *http.Request, field string) (*service.Upload, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		file.Close()
		return nil, nil, fmt.Errorf("unsupported file type %q for %s", ext, field)
	}
	return &service.Upload{Filename: header.Filename, Reader: file}, header, nil
}

func parseUploadForm(w http.ResponseWriter, r *http.Request, maxFileSizeMB int64) bool {
	// The overall form limit leaves headroom for several document slots
	// on top of the per-file ceiling enforced by MaxBytesReader.
	maxBytes := maxFileSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes*6)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "upload too large or malformed"})
		return false
	}
	return true
}
