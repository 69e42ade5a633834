package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/kittycapital/crypto-treasury/internal/store"
	"github.com/kittycapital/crypto-treasury/pkg/logger"
)

// SnapshotHandler serves the latest aggregate snapshot.
type SnapshotHandler struct {
	store  *store.Store
	logger *logger.Logger
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(st *store.Store, log *logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		store:  st,
		logger: log,
	}
}

// GetSnapshot returns the snapshot document as written by the last run.
func (h *SnapshotHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.ReadRaw()
	if err != nil {
		if os.IsNotExist(err) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "no snapshot yet, run an update first",
			})
			return
		}

		h.logger.WithError(err).Error("Failed to read snapshot")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "failed to read snapshot",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
