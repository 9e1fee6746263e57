package builder_test

import (
	"strings"
	"testing"

	"github.com/minagishl/command-builder/builder"
)

func magickDefaults(t *testing.T) (*builder.MagickOptions, builder.Builder) {
	t.Helper()
	b, ok := builder.Lookup("magick")
	if !ok {
		t.Fatal("magick builder not registered")
	}
	return b.NewOptions().(*builder.MagickOptions), b
}

func TestMagickMissingInput(t *testing.T) {
	o, b := magickDefaults(t)
	if got := b.Compile(o); got != "# Please specify an input file" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestMagickDefaultsOnly(t *testing.T) {
	o, b := magickDefaults(t)
	o.InputFile = "photo.jpg"

	got := b.Compile(o)
	if got != `magick "photo.jpg" "output.png"` {
		t.Fatalf("unexpected default line: %q", got)
	}
}

func TestMagickFlagOrder(t *testing.T) {
	o, b := magickDefaults(t)
	o.InputFile = "photo.jpg"
	o.Resize = "800x600"
	o.Rotate = "90"
	o.Grayscale = true
	o.Quality = "85"
	o.Strip = true
	o.OutputFile = "out.jpg"

	got := b.Compile(o)
	want := `magick "photo.jpg" -resize 800x600 -rotate 90 -colorspace Gray -quality 85 -strip "out.jpg"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMagickFlipFlop(t *testing.T) {
	o, b := magickDefaults(t)
	o.InputFile = "a.png"
	o.Flip = true
	o.Flop = true

	got := b.Compile(o)
	if !strings.Contains(got, "-flip -flop") {
		t.Fatalf("flip/flop missing or misordered: %q", got)
	}
}

func TestMagickExtraBeforeOutput(t *testing.T) {
	o, b := magickDefaults(t)
	o.InputFile = "a.png"
	o.Extra = "-auto-orient"

	got := b.Compile(o)
	if !strings.HasSuffix(got, `-auto-orient "output.png"`) {
		t.Fatalf("extra not directly before output: %q", got)
	}
}
