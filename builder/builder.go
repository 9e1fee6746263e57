// Package builder defines the per-tool command builders: a typed options
// record, a fixed preset table, and a pure compiler from options to a
// shell command string.
package builder

import (
	"encoding/json"
	"errors"
)

var ErrUnknownBuilder = errors.New("unknown builder")

// PresetNone is the sentinel preset key that clears the active-preset
// indicator without altering field values.
const PresetNone = "none"

// Info describes one builder for listings.
type Info struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Tool        string `json:"tool"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// FieldType selects the form control rendered for a field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// Choice is one entry of a select field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is the form schema for one options field. The schema order is the
// render order; it is fixed and unrelated to flag emission order.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Choices     []Choice  `json:"choices,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Group       string    `json:"group,omitempty"`
}

// Preset is a named partial options overlay. Overlay holds only the fields
// the preset sets; applying it leaves all other fields untouched.
type Preset struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Overlay     json.RawMessage `json:"overlay"`
}

// Builder is one tool's builder module. Implementations are stateless;
// all state lives in the options record passed to Compile.
type Builder interface {
	Info() Info
	Fields() []Field
	// NewOptions returns a fully-populated options record with every
	// field at its default value.
	NewOptions() any
	Presets() []Preset
	// Compile maps an options record to the command string, or to a
	// "# Please specify ..." placeholder when a required field is empty.
	// It never fails.
	Compile(opts any) string
}

var registry = []Builder{
	ytdlpBuilder{},
	ffmpegBuilder{},
	magickBuilder{},
	curlBuilder{},
	gitBuilder{},
}

// All returns the fixed builder set in display order.
func All() []Builder {
	return registry
}

// Lookup returns the builder registered under key.
func Lookup(key string) (Builder, bool) {
	for _, b := range registry {
		if b.Info().Key == key {
			return b, true
		}
	}
	return nil, false
}

// Decode replaces the full options record with raw. opts must be a pointer
// to the builder's concrete options type.
func Decode(opts any, raw []byte) error {
	return json.Unmarshal(raw, opts)
}

// ApplyOverlay shallow-merges the fields present in raw onto opts, leaving
// absent fields at their current values. Applying two overlays in
// succession composes their effects.
func ApplyOverlay(opts any, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, opts)
}

// FindPreset returns the preset registered under key on b.
func FindPreset(b Builder, key string) (Preset, bool) {
	for _, p := range b.Presets() {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}
