package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/minagishl/command-builder/builder"
)

var buildFlags struct {
	sets    []string
	presets []string
	copy    bool
}

var buildCmd = &cobra.Command{
	Use:   "build <builder>",
	Short: "Compile a command string from option assignments",
	Long: "Compile a command string for one builder. Presets apply first, in order,\n" +
		"then --set assignments overlay individual fields on the result.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		compiled, err := runBuild(args[0], buildFlags.presets, buildFlags.sets)
		if err != nil {
			return err
		}
		fmt.Println(compiled)

		if buildFlags.copy {
			copyToClipboard(compiled)
		}
		return nil
	},
}

// runBuild compiles one builder's command from defaults: presets apply
// first, in order, then --set assignments overlay the result.
func runBuild(builderKey string, presets, sets []string) (string, error) {
	b, ok := builder.Lookup(builderKey)
	if !ok {
		return "", fmt.Errorf("unknown builder %q (try 'command-builder list')", builderKey)
	}

	opts := b.NewOptions()
	for _, key := range presets {
		p, ok := builder.FindPreset(b, key)
		if !ok {
			return "", fmt.Errorf("unknown preset %q for %s", key, builderKey)
		}
		if err := builder.ApplyOverlay(opts, p.Overlay); err != nil {
			return "", err
		}
	}

	overlay, err := setOverlay(b, sets)
	if err != nil {
		return "", err
	}
	if overlay != nil {
		if err := builder.ApplyOverlay(opts, overlay); err != nil {
			return "", err
		}
	}

	return b.Compile(opts), nil
}

// setOverlay turns --set key=value assignments into a partial options
// overlay, using the field schema to type checkbox values as booleans.
func setOverlay(b builder.Builder, sets []string) (json.RawMessage, error) {
	if len(sets) == 0 {
		return nil, nil
	}

	types := make(map[string]builder.FieldType)
	for _, f := range b.Fields() {
		types[f.Key] = f.Type
	}

	record := make(map[string]any, len(sets))
	for _, assignment := range sets {
		key, value, found := strings.Cut(assignment, "=")
		if !found {
			return nil, fmt.Errorf("invalid --set %q, want key=value", assignment)
		}
		t, ok := types[key]
		if !ok {
			return nil, fmt.Errorf("unknown option %q for %s", key, b.Info().Key)
		}
		if t == builder.FieldCheckbox {
			on, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("option %q wants true or false, got %q", key, value)
			}
			record[key] = on
		} else {
			record[key] = value
		}
	}
	return json.Marshal(record)
}

// copyToClipboard writes the compiled string to the system clipboard.
// Failure is logged and swallowed; the printed command is still usable.
func copyToClipboard(s string) {
	if clipboard.Unsupported {
		log.Print("clipboard not supported on this platform")
		return
	}
	if err := clipboard.WriteAll(s); err != nil {
		log.Printf("clipboard write failed: %v", err)
		return
	}
	fmt.Println("(copied to clipboard)")
}

func init() {
	buildCmd.Flags().StringArrayVarP(&buildFlags.sets, "set", "s", nil, "Set an option field (key=value, repeatable)")
	buildCmd.Flags().StringArrayVarP(&buildFlags.presets, "preset", "P", nil, "Apply a named preset before --set (repeatable)")
	buildCmd.Flags().BoolVarP(&buildFlags.copy, "copy", "c", false, "Copy the compiled command to the clipboard")
}
