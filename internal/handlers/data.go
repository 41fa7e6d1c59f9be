package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"momentum-backend/internal/middleware"
)

type documentStore interface {
	ListByCollection(ctx context.Context, uid, collection string) ([]map[string]any, error)
	Save(ctx context.Context, uid, collection string, doc map[string]any) (map[string]any, bool, error)
	Delete(ctx context.Context, uid, collection, id string) error
}

// DataHandler exposes the generic per-user collection CRUD. It carries no
// business logic: documents pass through untouched.
type DataHandler struct {
	store documentStore
}

func NewDataHandler(store documentStore) *DataHandler {
	return &DataHandler{store: store}
}

func (h *DataHandler) List(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	uid := middleware.GetUserID(r.Context())

	docs, err := h.store.ListByCollection(r.Context(), uid, collection)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *DataHandler) Save(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	uid := middleware.GetUserID(r.Context())

	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || doc == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	saved, created, err := h.store.Save(r.Context(), uid, collection, doc)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	message := "Updated"
	if created {
		message = "Created"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"id":      saved["id"],
		"data":    saved,
	})
}

func (h *DataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")
	uid := middleware.GetUserID(r.Context())

	if err := h.store.Delete(r.Context(), uid, collection, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted", "id": id})
}
