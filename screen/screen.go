package screen

import (
	"errors"
	"time"

	"github.com/minagishl/command-builder/builder"
)

var ErrNotFound = errors.New("screen not found")
var ErrUnknownBuilder = builder.ErrUnknownBuilder
var ErrUnknownPreset = errors.New("unknown preset")

// Screen is the state of one mounted builder screen: created on mount,
// mutated on input, discarded on navigation away. Command always reflects
// the current options record.
type Screen struct {
	ID         string    `json:"id"`
	Builder    string    `json:"builder"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	Preset     string    `json:"preset"`
	Options    any       `json:"options"`
	Command    string    `json:"command"`
}
