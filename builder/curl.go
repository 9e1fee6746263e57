package builder

import (
	"encoding/json"
	"strings"

	"github.com/minagishl/command-builder/command"
)

// Auth and body modes of the HTTP client builder.
const (
	AuthNone   = "none"
	AuthBasic  = "basic"
	AuthBearer = "bearer"

	DataNone = "none"
	DataRaw  = "raw"
	DataForm = "form"
)

// CurlOptions is the flat options record of the HTTP client builder.
// Headers and FormBody are newline-separated lists; each non-empty line
// becomes one -H / --data-urlencode token pair.
type CurlOptions struct {
	URL             string `json:"url"`
	Query           string `json:"query"`
	Method          string `json:"method"`
	IncludeHeaders  bool   `json:"includeHeaders"`
	FollowRedirects bool   `json:"followRedirects"`
	Insecure        bool   `json:"insecure"`
	Compressed      bool   `json:"compressed"`
	MaxTime         string `json:"maxTime"`
	Retry           string `json:"retry"`
	Proxy           string `json:"proxy"`
	ContentType     string `json:"contentType"`
	Headers         string `json:"headers"`
	AuthMode        string `json:"authMode"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	BearerToken     string `json:"bearerToken"`
	DataMode        string `json:"dataMode"`
	Body            string `json:"body"`
	FormBody        string `json:"formBody"`
	OutputFile      string `json:"outputFile"`
	Extra           string `json:"extra"`
}

type curlBuilder struct{}

func (curlBuilder) Info() Info {
	return Info{
		Key:         "curl",
		Title:       "curl",
		Tool:        "curl",
		Description: "Build HTTP requests with headers, auth and request bodies",
		Available:   true,
	}
}

func (curlBuilder) NewOptions() any {
	return &CurlOptions{
		Method:   "GET",
		AuthMode: AuthNone,
		DataMode: DataNone,
	}
}

func (curlBuilder) Fields() []Field {
	return []Field{
		{Key: "url", Label: "URL", Type: FieldText, Placeholder: "https://api.example.com/v1/items", Group: "Request"},
		{Key: "query", Label: "Query string", Type: FieldText, Placeholder: "page=2&limit=50", Group: "Request"},
		{Key: "method", Label: "Method", Type: FieldSelect, Choices: []Choice{
			{Value: "GET", Label: "GET"}, {Value: "POST", Label: "POST"}, {Value: "PUT", Label: "PUT"}, {Value: "PATCH", Label: "PATCH"}, {Value: "DELETE", Label: "DELETE"}, {Value: "HEAD", Label: "HEAD"},
		}, Group: "Request"},
		{Key: "includeHeaders", Label: "Include response headers (-i)", Type: FieldCheckbox, Group: "Behavior"},
		{Key: "followRedirects", Label: "Follow redirects (-L)", Type: FieldCheckbox, Group: "Behavior"},
		{Key: "insecure", Label: "Skip TLS verification (-k)", Type: FieldCheckbox, Group: "Behavior"},
		{Key: "compressed", Label: "Request compressed response", Type: FieldCheckbox, Group: "Behavior"},
		{Key: "maxTime", Label: "Max time (seconds)", Type: FieldText, Group: "Behavior"},
		{Key: "retry", Label: "Retry count", Type: FieldText, Group: "Behavior"},
		{Key: "proxy", Label: "Proxy", Type: FieldText, Placeholder: "http://127.0.0.1:8080", Group: "Behavior"},
		{Key: "contentType", Label: "Content-Type", Type: FieldText, Placeholder: "application/json", Group: "Headers"},
		{Key: "headers", Label: "Headers (one per line)", Type: FieldText, Placeholder: "Accept: application/json", Group: "Headers"},
		{Key: "authMode", Label: "Authentication", Type: FieldSelect, Choices: []Choice{
			{Value: AuthNone, Label: "None"}, {Value: AuthBasic, Label: "Basic"}, {Value: AuthBearer, Label: "Bearer token"},
		}, Group: "Auth"},
		{Key: "username", Label: "Username", Type: FieldText, Group: "Auth"},
		{Key: "password", Label: "Password", Type: FieldText, Group: "Auth"},
		{Key: "bearerToken", Label: "Bearer token", Type: FieldText, Group: "Auth"},
		{Key: "dataMode", Label: "Request body", Type: FieldSelect, Choices: []Choice{
			{Value: DataNone, Label: "None"}, {Value: DataRaw, Label: "Raw body"}, {Value: DataForm, Label: "Form fields"},
		}, Group: "Body"},
		{Key: "body", Label: "Raw body", Type: FieldText, Placeholder: `{"name":"x"}`, Group: "Body"},
		{Key: "formBody", Label: "Form fields (one per line)", Type: FieldText, Placeholder: "a=1", Group: "Body"},
		{Key: "outputFile", Label: "Save response to file (-o)", Type: FieldText, Group: "Output"},
		{Key: "extra", Label: "Extra options", Type: FieldText, Group: "Extra"},
	}
}

func (curlBuilder) Presets() []Preset {
	return []Preset{
		{Key: "json-get", Name: "JSON GET", Description: "GET with JSON accept header, follow redirects",
			Overlay: json.RawMessage(`{"method":"GET","headers":"Accept: application/json","followRedirects":true,"compressed":true}`)},
		{Key: "json-post", Name: "JSON POST", Description: "POST a raw JSON body",
			Overlay: json.RawMessage(`{"method":"POST","contentType":"application/json","dataMode":"raw","body":"{\"key\":\"value\"}"}`)},
		{Key: "form-post", Name: "Form POST", Description: "POST URL-encoded form fields",
			Overlay: json.RawMessage(`{"method":"POST","dataMode":"form","formBody":"field=value"}`)},
		{Key: "download", Name: "Download file", Description: "Follow redirects and save the response body",
			Overlay: json.RawMessage(`{"method":"GET","followRedirects":true,"outputFile":"download.bin"}`)},
		{Key: "bearer-api", Name: "Bearer API call", Description: "Authenticated JSON API request",
			Overlay: json.RawMessage(`{"authMode":"bearer","bearerToken":"TOKEN","contentType":"application/json","compressed":true}`)},
	}
}

// Compile flag order: behavior, method, headers, auth, body, extra, URL,
// output. -X is suppressed for GET (curl's implicit default).
func (curlBuilder) Compile(opts any) string {
	o := opts.(*CurlOptions)
	if o.URL == "" {
		return "# Please specify a URL"
	}

	l := command.New("curl")
	l.FlagIf("-i", o.IncludeHeaders)
	l.FlagIf("-L", o.FollowRedirects)
	l.FlagIf("-k", o.Insecure)
	l.FlagIf("--compressed", o.Compressed)
	l.FlagValue("--max-time", o.MaxTime)
	l.FlagValue("--retry", o.Retry)
	l.FlagValue("--proxy", o.Proxy)
	if o.Method != "" && o.Method != "GET" {
		l.FlagValue("-X", o.Method)
	}
	if o.ContentType != "" {
		l.FlagQuoted("-H", "Content-Type: "+o.ContentType)
	}
	for _, h := range splitLines(o.Headers) {
		l.FlagQuoted("-H", h)
	}

	// Exactly one auth branch.
	switch o.AuthMode {
	case AuthBasic:
		l.FlagQuoted("-u", o.Username+":"+o.Password)
	case AuthBearer:
		if o.BearerToken != "" {
			l.FlagQuoted("-H", "Authorization: Bearer "+o.BearerToken)
		}
	}

	// Exactly one body branch. Raw bodies are single-quoted, form fields
	// double-quoted, matching the source system.
	switch o.DataMode {
	case DataRaw:
		l.FlagSingle("--data-binary", o.Body)
	case DataForm:
		for _, pair := range splitLines(o.FormBody) {
			l.FlagQuoted("--data-urlencode", pair)
		}
	}

	l.Raw(o.Extra)
	l.Quoted(joinQuery(o.URL, o.Query))
	l.FlagQuoted("-o", o.OutputFile)
	return l.String()
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func joinQuery(url, query string) string {
	if query == "" {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + query
}
