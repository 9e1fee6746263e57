package builder_test

import (
	"strings"
	"testing"

	"github.com/minagishl/command-builder/builder"
)

func curlDefaults(t *testing.T) (*builder.CurlOptions, builder.Builder) {
	t.Helper()
	b, ok := builder.Lookup("curl")
	if !ok {
		t.Fatal("curl builder not registered")
	}
	return b.NewOptions().(*builder.CurlOptions), b
}

func TestCurlMissingURL(t *testing.T) {
	o, b := curlDefaults(t)
	if got := b.Compile(o); got != "# Please specify a URL" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestCurlPlainGet(t *testing.T) {
	o, b := curlDefaults(t)
	o.URL = "https://x"
	if got := b.Compile(o); got != `curl "https://x"` {
		t.Fatalf("unexpected GET line: %q", got)
	}
}

func TestCurlFormPost(t *testing.T) {
	o, b := curlDefaults(t)
	o.Method = "POST"
	o.DataMode = builder.DataForm
	o.FormBody = "a=1"
	o.URL = "https://x"

	got := b.Compile(o)
	if !strings.Contains(got, "-X POST") {
		t.Fatalf("missing -X POST: %q", got)
	}
	if !strings.Contains(got, `--data-urlencode "a=1"`) {
		t.Fatalf("missing form field: %q", got)
	}
	if !strings.HasSuffix(got, `"https://x"`) {
		t.Fatalf("URL not last: %q", got)
	}
}

func TestCurlRawBodySingleQuoted(t *testing.T) {
	o, b := curlDefaults(t)
	o.Method = "POST"
	o.DataMode = builder.DataRaw
	o.Body = `{"name":"x"}`
	o.ContentType = "application/json"
	o.URL = "https://x"

	got := b.Compile(o)
	if !strings.Contains(got, `-H "Content-Type: application/json"`) {
		t.Fatalf("missing content type header: %q", got)
	}
	if !strings.Contains(got, `--data-binary '{"name":"x"}'`) {
		t.Fatalf("raw body not single-quoted: %q", got)
	}
}

// Basic auth and bearer token are mutually exclusive branches.
func TestCurlAuthExclusion(t *testing.T) {
	o, b := curlDefaults(t)
	o.URL = "https://x"
	o.Username = "user"
	o.Password = "pass"
	o.BearerToken = "tok"

	o.AuthMode = builder.AuthBasic
	got := b.Compile(o)
	if !strings.Contains(got, `-u "user:pass"`) {
		t.Fatalf("missing basic auth: %q", got)
	}
	if strings.Contains(got, "Authorization: Bearer") {
		t.Fatalf("bearer header present in basic mode: %q", got)
	}

	o.AuthMode = builder.AuthBearer
	got = b.Compile(o)
	if !strings.Contains(got, `-H "Authorization: Bearer tok"`) {
		t.Fatalf("missing bearer header: %q", got)
	}
	if strings.Contains(got, "-u ") {
		t.Fatalf("basic auth present in bearer mode: %q", got)
	}
}

// Raw and form bodies are mutually exclusive branches.
func TestCurlDataModeExclusion(t *testing.T) {
	o, b := curlDefaults(t)
	o.URL = "https://x"
	o.Body = "raw"
	o.FormBody = "a=1"

	o.DataMode = builder.DataRaw
	got := b.Compile(o)
	if strings.Contains(got, "--data-urlencode") {
		t.Fatalf("form flag present in raw mode: %q", got)
	}

	o.DataMode = builder.DataForm
	got = b.Compile(o)
	if strings.Contains(got, "--data-binary") {
		t.Fatalf("raw flag present in form mode: %q", got)
	}
}

func TestCurlQueryJoin(t *testing.T) {
	o, b := curlDefaults(t)
	o.URL = "https://x/search"
	o.Query = "q=go"
	if got := b.Compile(o); !strings.HasSuffix(got, `"https://x/search?q=go"`) {
		t.Fatalf("query not joined with ?: %q", got)
	}

	o.URL = "https://x/search?lang=en"
	if got := b.Compile(o); !strings.HasSuffix(got, `"https://x/search?lang=en&q=go"`) {
		t.Fatalf("query not joined with &: %q", got)
	}
}

func TestCurlMultipleHeadersAndOutput(t *testing.T) {
	o, b := curlDefaults(t)
	o.URL = "https://x"
	o.Headers = "Accept: application/json\nX-Trace: 1\n"
	o.OutputFile = "resp.json"

	got := b.Compile(o)
	if !strings.Contains(got, `-H "Accept: application/json" -H "X-Trace: 1"`) {
		t.Fatalf("headers wrong: %q", got)
	}
	if !strings.HasSuffix(got, `"https://x" -o "resp.json"`) {
		t.Fatalf("output file not after URL: %q", got)
	}
}
