package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minagishl/command-builder/builder"
)

func (h *handler) listBuilders(w http.ResponseWriter, r *http.Request) {
	infos := make([]builder.Info, 0, len(builder.All()))
	for _, b := range builder.All() {
		infos = append(infos, b.Info())
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(infos)
}

// builderDetail is everything a builder page needs to render its form.
type builderDetail struct {
	Info     builder.Info     `json:"info"`
	Fields   []builder.Field  `json:"fields"`
	Defaults any              `json:"defaults"`
	Presets  []builder.Preset `json:"presets"`
}

func (h *handler) getBuilder(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	b, ok := builder.Lookup(key)
	if !ok {
		http.Error(w, "builder not found", http.StatusNotFound)
		return
	}

	detail := builderDetail{
		Info:     b.Info(),
		Fields:   b.Fields(),
		Defaults: b.NewOptions(),
		Presets:  b.Presets(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(detail)
}

// compile is the stateless variant: post a full options record, get the
// command string back without mounting a screen.
func (h *handler) compile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	b, ok := builder.Lookup(key)
	if !ok {
		http.Error(w, "builder not found", http.StatusNotFound)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	opts := b.NewOptions()
	if err := builder.Decode(opts, raw); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"command": b.Compile(opts)})
}
