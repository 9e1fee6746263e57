package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/minagishl/command-builder/api"
	"github.com/minagishl/command-builder/screen"
)

type screenPayload struct {
	ID      string          `json:"id"`
	Builder string          `json:"builder"`
	Preset  string          `json:"preset"`
	Options json.RawMessage `json:"options"`
	Command string          `json:"command"`
}

func newScreenTestServer(t *testing.T) (*httptest.Server, *screen.Manager) {
	t.Helper()
	mgr := screen.NewManager()
	staticFS := fstest.MapFS{
		"index.html":   {Data: []byte("<html></html>")},
		"builder.html": {Data: []byte("<html></html>")},
	}
	srv := httptest.NewServer(api.RegisterRoutes(mgr, staticFS))
	return srv, mgr
}

func createScreen(t *testing.T, srv *httptest.Server, builderKey string) screenPayload {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/screens", "application/json",
		strings.NewReader(`{"builder":"`+builderKey+`"}`))
	if err != nil {
		t.Fatalf("POST /api/screens: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var s screenPayload
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatalf("decode screen: %v", err)
	}
	return s
}

func TestCreateScreenAndDefaults(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	s := createScreen(t, srv, "ffmpeg")
	if s.ID == "" || s.Builder != "ffmpeg" {
		t.Fatalf("unexpected screen: %+v", s)
	}
	if s.Command != "# Please specify an input file" {
		t.Fatalf("unexpected initial command: %q", s.Command)
	}
}

func TestCreateScreenUnknownBuilder(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/screens", "application/json",
		strings.NewReader(`{"builder":"nope"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateScreenBadBody(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/screens", "application/json",
		strings.NewReader("not-json"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSetOptionsRecompiles(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	s := createScreen(t, srv, "git")

	var opts map[string]any
	if err := json.Unmarshal(s.Options, &opts); err != nil {
		t.Fatal(err)
	}
	opts["command"] = "reset"
	opts["resetMode"] = "mixed"
	opts["resetTarget"] = "HEAD~1"
	body, _ := json.Marshal(opts)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/screens/"+s.ID+"/options",
		bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT options: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var updated screenPayload
	json.NewDecoder(resp.Body).Decode(&updated)
	if updated.Command != "git reset HEAD~1" {
		t.Fatalf("got %q, want %q", updated.Command, "git reset HEAD~1")
	}
}

func TestApplyPresetThenNone(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	s := createScreen(t, srv, "ytdlp")

	resp, err := http.Post(srv.URL+"/api/screens/"+s.ID+"/preset", "application/json",
		strings.NewReader(`{"key":"audio-mp3"}`))
	if err != nil {
		t.Fatal(err)
	}
	var applied screenPayload
	json.NewDecoder(resp.Body).Decode(&applied)
	resp.Body.Close()
	if applied.Preset != "audio-mp3" {
		t.Fatalf("active preset not set: %+v", applied)
	}

	resp, err = http.Post(srv.URL+"/api/screens/"+s.ID+"/preset", "application/json",
		strings.NewReader(`{"key":"none"}`))
	if err != nil {
		t.Fatal(err)
	}
	var cleared screenPayload
	json.NewDecoder(resp.Body).Decode(&cleared)
	resp.Body.Close()
	if cleared.Preset != "" {
		t.Fatalf("preset indicator not cleared: %q", cleared.Preset)
	}
	if cleared.Command != applied.Command {
		t.Fatalf("none altered field values: %q vs %q", cleared.Command, applied.Command)
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	s := createScreen(t, srv, "curl")
	resp, err := http.Post(srv.URL+"/api/screens/"+s.ID+"/preset", "application/json",
		strings.NewReader(`{"key":"ghost"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDiscardScreen(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	s := createScreen(t, srv, "magick")

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/screens/"+s.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	getResp, err := http.Get(srv.URL + "/api/screens/" + s.ID)
	if err != nil {
		t.Fatal(err)
	}
	getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after discard, got %d", getResp.StatusCode)
	}
}

func TestListScreens(t *testing.T) {
	srv, _ := newScreenTestServer(t)
	defer srv.Close()

	createScreen(t, srv, "git")
	createScreen(t, srv, "curl")

	resp, err := http.Get(srv.URL + "/api/screens")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var screens []screenPayload
	json.NewDecoder(resp.Body).Decode(&screens)
	if len(screens) != 2 {
		t.Fatalf("expected 2 screens, got %d", len(screens))
	}
}
