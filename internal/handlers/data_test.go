package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"momentum-backend/internal/middleware"
)

type fakeStore struct {
	docs []map[string]any

	gotUID        string
	gotCollection string
	gotDoc        map[string]any
	gotID         string
	created       bool
	err           error
}

func (f *fakeStore) ListByCollection(ctx context.Context, uid, collection string) ([]map[string]any, error) {
	f.gotUID, f.gotCollection = uid, collection
	return f.docs, f.err
}

func (f *fakeStore) Save(ctx context.Context, uid, collection string, doc map[string]any) (map[string]any, bool, error) {
	f.gotUID, f.gotCollection, f.gotDoc = uid, collection, doc
	if f.err != nil {
		return nil, false, f.err
	}
	saved := map[string]any{"id": "doc-1"}
	for k, v := range doc {
		saved[k] = v
	}
	return saved, f.created, nil
}

func (f *fakeStore) Delete(ctx context.Context, uid, collection, id string) error {
	f.gotUID, f.gotCollection, f.gotID = uid, collection, id
	return f.err
}

func dataRequest(method, path, body, uid string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uid)
	return req.WithContext(ctx)
}

func newDataRouter(h *DataHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/data/{collection}", h.List)
	r.Post("/api/data/{collection}", h.Save)
	r.Delete("/api/data/{collection}/{id}", h.Delete)
	return r
}

func TestDataHandlerList(t *testing.T) {
	store := &fakeStore{docs: []map[string]any{
		{"id": "a", "title": "Read"},
		{"id": "b", "title": "Write"},
	}}
	r := newDataRouter(NewDataHandler(store))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dataRequest(http.MethodGet, "/api/data/goals", "", "user-123"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if store.gotUID != "user-123" || store.gotCollection != "goals" {
		t.Errorf("store called with uid=%q collection=%q", store.gotUID, store.gotCollection)
	}

	var docs []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&docs); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(docs) != 2 || docs[0]["id"] != "a" {
		t.Errorf("docs = %v", docs)
	}
}

func TestDataHandlerSave(t *testing.T) {
	tests := []struct {
		name        string
		created     bool
		wantMessage string
	}{
		{"insert", true, "Created"},
		{"update", false, "Updated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{created: tt.created}
			r := newDataRouter(NewDataHandler(store))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, dataRequest(http.MethodPost, "/api/data/goals", `{"title":"Read"}`, "user-123"))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			var resp map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if resp["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %s", resp["message"], tt.wantMessage)
			}
			if resp["id"] != "doc-1" {
				t.Errorf("id = %v", resp["id"])
			}
		})
	}
}

func TestDataHandlerSaveInvalidBody(t *testing.T) {
	for _, body := range []string{`{bad`, `null`} {
		t.Run(fmt.Sprintf("body %s", body), func(t *testing.T) {
			r := newDataRouter(NewDataHandler(&fakeStore{}))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, dataRequest(http.MethodPost, "/api/data/goals", body, "user-123"))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestDataHandlerDelete(t *testing.T) {
	store := &fakeStore{}
	r := newDataRouter(NewDataHandler(store))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, dataRequest(http.MethodDelete, "/api/data/goals/doc-9", "", "user-123"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if store.gotID != "doc-9" {
		t.Errorf("deleted id = %q, want doc-9", store.gotID)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp["message"] != "Deleted" || resp["id"] != "doc-9" {
		t.Errorf("resp = %v", resp)
	}
}
