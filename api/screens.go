package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minagishl/command-builder/screen"
)

func (h *handler) listScreens(w http.ResponseWriter, r *http.Request) {
	screens := h.manager.List()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(screens)
}

func (h *handler) createScreen(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Builder string `json:"builder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Builder == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.manager.Create(req.Builder)
	if err != nil {
		if errors.Is(err, screen.ErrUnknownBuilder) {
			http.Error(w, "builder not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to create screen", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

func (h *handler) getScreen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, ok := h.manager.Get(id)
	if !ok {
		http.Error(w, "screen not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// setOptions replaces the full options record; the compiled command in the
// response reflects the new record.
func (h *handler) setOptions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.manager.SetOptions(id, raw)
	if err != nil {
		if errors.Is(err, screen.ErrNotFound) {
			http.Error(w, "screen not found", http.StatusNotFound)
			return
		}
		http.Error(w, "invalid options record", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

func (h *handler) applyPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.manager.ApplyPreset(id, req.Key)
	if err != nil {
		switch {
		case errors.Is(err, screen.ErrNotFound):
			http.Error(w, "screen not found", http.StatusNotFound)
		case errors.Is(err, screen.ErrUnknownPreset):
			http.Error(w, "preset not found", http.StatusNotFound)
		default:
			http.Error(w, "failed to apply preset", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

func (h *handler) discardScreen(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.manager.Discard(id); err != nil {
		if errors.Is(err, screen.ErrNotFound) {
			http.Error(w, "screen not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to discard screen", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
