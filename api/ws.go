package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is both directions of the live-recompile channel. The client
// sends "options" (full record) or "preset" (key); the server replies with
// "command" carrying the recompiled string and the active preset key.
type wsMessage struct {
	Type    string          `json:"type"`
	Options json.RawMessage `json:"options,omitempty"`
	Key     string          `json:"key,omitempty"`
	Command string          `json:"command,omitempty"`
	Preset  string          `json:"preset,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.manager.Get(id); !ok {
		http.Error(w, "screen not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// Serialise all WebSocket writes — gorilla/websocket forbids concurrent writes.
	var writeMu sync.Mutex
	writeMsg := func(msg wsMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	// Single read loop: edits are applied in arrival order, so the last
	// edit wins on the screen's one options record.
	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// Client navigated away or the message was malformed.
			// The screen itself stays mounted until discarded.
			return
		}

		switch msg.Type {
		case "options":
			s, err := h.manager.SetOptions(id, msg.Options)
			if err != nil {
				if werr := writeMsg(wsMessage{Type: "error", Error: "invalid options record"}); werr != nil {
					return
				}
				continue
			}
			if err := writeMsg(wsMessage{Type: "command", Command: s.Command, Preset: s.Preset}); err != nil {
				return
			}
		case "preset":
			s, err := h.manager.ApplyPreset(id, msg.Key)
			if err != nil {
				if werr := writeMsg(wsMessage{Type: "error", Error: "unknown preset"}); werr != nil {
					return
				}
				continue
			}
			if err := writeMsg(wsMessage{Type: "command", Command: s.Command, Preset: s.Preset}); err != nil {
				return
			}
		}
	}
}
