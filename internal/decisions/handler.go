package decisions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"log/slog"
)

// CollectionHandler serves /api/credit-decisions.
type CollectionHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *CollectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		all, err := h.Service.GetAll(r.Context())
		if err != nil {
			h.Logger.Error("list credit decisions", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if all == nil {
			all = []Decision{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(all)
	case http.MethodPost:
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Revenue < 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		d, err := h.Service.Create(r.Context(), in)
		if err != nil {
			h.Logger.Error("create credit decision", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ItemHandler serves /api/credit-decisions/{id}.
type ItemHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r.URL.Path)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		d, err := h.Service.GetByID(r.Context(), id)
		if err != nil {
			h.respondErr(w, "get credit decision", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
	case http.MethodPut:
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Revenue < 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		d, err := h.Service.Update(r.Context(), id, in)
		if err != nil {
			h.respondErr(w, "update credit decision", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
	case http.MethodDelete:
		if err := h.Service.Delete(r.Context(), id); err != nil {
			h.respondErr(w, "delete credit decision", err)
			return
		}
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ItemHandler) respondErr(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.Logger.Error(op, "err", err)
	w.WriteHeader(http.StatusInternalServerError)
}

// idFromPath extracts the trailing integer of /api/credit-decisions/{id}.
func idFromPath(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
