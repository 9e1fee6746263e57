package builder_test

import (
	"strings"
	"testing"

	"github.com/minagishl/command-builder/builder"
)

func ytdlpDefaults(t *testing.T) (*builder.YtdlpOptions, builder.Builder) {
	t.Helper()
	b, ok := builder.Lookup("ytdlp")
	if !ok {
		t.Fatal("ytdlp builder not registered")
	}
	return b.NewOptions().(*builder.YtdlpOptions), b
}

func TestYtdlpAudioMP3(t *testing.T) {
	o, b := ytdlpDefaults(t)
	o.AudioOnly = true
	o.Format = "mp3"
	o.AudioQuality = "0"
	o.URL = "https://x/y"

	got := b.Compile(o)
	want := "yt-dlp -x --audio-format mp3 --audio-quality 0 -o %(title)s.%(ext)s https://x/y"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestYtdlpMissingURL(t *testing.T) {
	o, b := ytdlpDefaults(t)
	if got := b.Compile(o); got != "# Please specify a URL" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestYtdlpVideoMode(t *testing.T) {
	o, b := ytdlpDefaults(t)
	o.URL = "https://x/y"
	o.Format = "bestvideo+bestaudio"
	o.MergeFormat = "mp4"

	got := b.Compile(o)
	if !strings.Contains(got, "-f bestvideo+bestaudio") {
		t.Fatalf("missing -f selector: %q", got)
	}
	if !strings.Contains(got, "--merge-output-format mp4") {
		t.Fatalf("missing merge format: %q", got)
	}
	if strings.Contains(got, "-x") || strings.Contains(got, "--audio-format") {
		t.Fatalf("audio flags leaked into video mode: %q", got)
	}
}

// The audio and video branches are mutually exclusive regardless of which
// fields are populated.
func TestYtdlpModeExclusion(t *testing.T) {
	o, b := ytdlpDefaults(t)
	o.URL = "https://x/y"
	o.Format = "mp3"
	o.MergeFormat = "mkv"
	o.AudioQuality = "5"

	o.AudioOnly = true
	got := b.Compile(o)
	if strings.Contains(got, "-f ") || strings.Contains(got, "--merge-output-format") {
		t.Fatalf("video flags present in audio mode: %q", got)
	}

	o.AudioOnly = false
	got = b.Compile(o)
	if strings.Contains(got, "-x") || strings.Contains(got, "--audio-quality") {
		t.Fatalf("audio flags present in video mode: %q", got)
	}
}

func TestYtdlpURLLast(t *testing.T) {
	o, b := ytdlpDefaults(t)
	o.URL = "https://x/y"
	o.Extra = "--no-mtime"
	o.UseAria2c = true

	got := b.Compile(o)
	if !strings.HasSuffix(got, "--external-downloader aria2c --no-mtime https://x/y") {
		t.Fatalf("extra/URL ordering wrong: %q", got)
	}
}

func TestYtdlpSubLangsOnlyWithWriteSubs(t *testing.T) {
	o, b := ytdlpDefaults(t)
	o.URL = "https://x/y"
	o.SubLangs = "en"

	if got := b.Compile(o); strings.Contains(got, "--sub-langs") {
		t.Fatalf("--sub-langs without --write-subs: %q", got)
	}
	o.WriteSubs = true
	got := b.Compile(o)
	if !strings.Contains(got, "--write-subs --sub-langs en") {
		t.Fatalf("subtitle flags wrong: %q", got)
	}
}
