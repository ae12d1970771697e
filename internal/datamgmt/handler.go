package datamgmt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"log/slog"
)

// CollectionHandler serves /api/data-management.
type CollectionHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *CollectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		all, err := h.Service.GetAll(r.Context())
		if err != nil {
			h.Logger.Error("list data management records", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if all == nil {
			all = []Record{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(all)
	case http.MethodPost:
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rec, err := h.Service.Create(r.Context(), in)
		if err != nil {
			h.Logger.Error("create data management record", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rec)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ItemHandler serves /api/data-management/{id}.
type ItemHandler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 3 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		rec, err := h.Service.GetByID(r.Context(), id)
		if err != nil {
			h.respondErr(w, "get data management record", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	case http.MethodPut:
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rec, err := h.Service.Update(r.Context(), id, in)
		if err != nil {
			h.respondErr(w, "update data management record", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	case http.MethodDelete:
		if err := h.Service.Delete(r.Context(), id); err != nil {
			h.respondErr(w, "delete data management record", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
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
