package media

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"pronet/internal/common"
	"pronet/internal/dbmongo"
)

// Handler streams stored media files out of blob storage. Pure pass-through:
// posts hold the /media/{fileId} reference, this resolves it.
type Handler struct {
	storage *dbmongo.MediaStorage
}

func NewHandler(storage *dbmongo.MediaStorage) *Handler {
	return &Handler{storage: storage}
}

func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	fileReader, mediaFile, err := h.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		common.WriteMessage(w, http.StatusNotFound, "file not found")
		return
	}

	w.Header().Set("Content-Type", common.ContentTypeFor(mediaFile.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))

	if _, err := io.Copy(w, fileReader); err != nil {
		log.Printf("error streaming file %s: %v", fileID, err)
	}
}
