package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/Amarie1212/ppmnurulhakim/internal/storage"
)

// FileHandler streams stored documents and transfer proofs to reviewers.
type FileHandler struct {
	store storage.Interface
}

func NewFileHandler(store storage.Interface) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.store.Open(r.Context(), key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "file not found"})
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".pdf":
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, file)
}
