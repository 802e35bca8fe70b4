package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/crebase/listing-finder/pkg/common"
	"github.com/crebase/listing-finder/pkg/types"
)

type saveFilterRequest struct {
	Name     string             `json:"name"`
	Duration string             `json:"duration"`
	Filters  types.FilterValues `json:"filters"`
}

type renameFilterRequest struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// SavedFilters handles the collection routes: list on GET, save on POST.
func (ws *WebServer) SavedFilters(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	store := ws.store(w, r, sessionId)
	switch r.Method {
	case http.MethodGet:
		common.JsonHeaders(w, r, "0")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(store.List())
	case http.MethodPost:
		req := saveFilterRequest{Filters: types.DefaultFilterValues()}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return err
		}
		id, err := store.Save(req.Name, req.Duration, req.Filters)
		if err != nil {
			http.Error(w, "could not save search", http.StatusInternalServerError)
			return err
		}
		noFilterSaves.Inc()
		if ws.Tracking != nil {
			go ws.Tracking.TrackFilterSaved(sessionId, id, req.Name)
		}
		common.JsonHeaders(w, r, "0")
		w.WriteHeader(http.StatusCreated)
		return enc.Encode(map[string]string{"id": id})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil
	}
}

// SavedFilterById handles the item routes: get, rename, delete.
func (ws *WebServer) SavedFilterById(w http.ResponseWriter, r *http.Request, sessionId string, enc *json.Encoder) error {
	id := strings.TrimPrefix(r.URL.Path, "/api/saved-filters/")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return nil
	}
	store := ws.store(w, r, sessionId)
	switch r.Method {
	case http.MethodGet:
		entry, ok := store.Get(id)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return nil
		}
		common.JsonHeaders(w, r, "0")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(entry)
	case http.MethodPut:
		req := renameFilterRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return err
		}
		if err := store.Update(id, req.Name, req.Duration); err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	case http.MethodDelete:
		if err := store.Delete(id); err != nil {
			http.Error(w, "could not delete", http.StatusInternalServerError)
			return err
		}
		noFilterDeletes.Inc()
		if ws.Tracking != nil {
			go ws.Tracking.TrackFilterDeleted(sessionId, id)
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil
	}
}
