package builder

import (
	"encoding/json"

	"github.com/minagishl/command-builder/command"
)

// YtdlpOptions is the flat options record of the media downloader builder.
// Format is shared between the two modes: the audio format when AudioOnly
// is set, the -f selector otherwise.
type YtdlpOptions struct {
	URL                string `json:"url"`
	AudioOnly          bool   `json:"audioOnly"`
	Format             string `json:"format"`
	AudioQuality       string `json:"audioQuality"`
	MergeFormat        string `json:"mergeFormat"`
	OutputPath         string `json:"outputPath"`
	OutputTemplate     string `json:"outputTemplate"`
	WriteSubs          bool   `json:"writeSubs"`
	SubLangs           string `json:"subLangs"`
	AutoSubs           bool   `json:"autoSubs"`
	EmbedSubs          bool   `json:"embedSubs"`
	EmbedThumbnail     bool   `json:"embedThumbnail"`
	EmbedMetadata      bool   `json:"embedMetadata"`
	WriteThumbnail     bool   `json:"writeThumbnail"`
	WriteInfoJSON      bool   `json:"writeInfoJson"`
	NoPlaylist         bool   `json:"noPlaylist"`
	PlaylistItems      string `json:"playlistItems"`
	SponsorblockRemove string `json:"sponsorblockRemove"`
	LimitRate          string `json:"limitRate"`
	Proxy              string `json:"proxy"`
	DownloadArchive    string `json:"downloadArchive"`
	LiveFromStart      bool   `json:"liveFromStart"`
	CookiesFile        string `json:"cookiesFile"`
	CookiesFromBrowser string `json:"cookiesFromBrowser"`
	UseAria2c          bool   `json:"useAria2c"`
	Extra              string `json:"extra"`
}

type ytdlpBuilder struct{}

func (ytdlpBuilder) Info() Info {
	return Info{
		Key:         "ytdlp",
		Title:       "yt-dlp",
		Tool:        "yt-dlp",
		Description: "Download video or audio from YouTube and other sites",
		Available:   true,
	}
}

func (ytdlpBuilder) NewOptions() any {
	return &YtdlpOptions{
		OutputTemplate: "%(title)s.%(ext)s",
	}
}

func (ytdlpBuilder) Fields() []Field {
	return []Field{
		{Key: "url", Label: "Video URL", Type: FieldText, Placeholder: "https://www.youtube.com/watch?v=...", Group: "Source"},
		{Key: "audioOnly", Label: "Audio only (-x)", Type: FieldCheckbox, Group: "Mode"},
		{Key: "format", Label: "Format", Type: FieldText, Placeholder: "mp3 / bestvideo+bestaudio", Group: "Mode"},
		{Key: "audioQuality", Label: "Audio quality (0 best – 10 worst)", Type: FieldText, Group: "Mode"},
		{Key: "mergeFormat", Label: "Merge output format", Type: FieldSelect, Choices: []Choice{
			{Value: "", Label: "Default"}, {Value: "mp4", Label: "mp4"}, {Value: "mkv", Label: "mkv"}, {Value: "webm", Label: "webm"},
		}, Group: "Mode"},
		{Key: "outputPath", Label: "Download folder (-P)", Type: FieldText, Group: "Output"},
		{Key: "outputTemplate", Label: "Output template (-o)", Type: FieldText, Group: "Output"},
		{Key: "writeSubs", Label: "Write subtitles", Type: FieldCheckbox, Group: "Subtitles"},
		{Key: "subLangs", Label: "Subtitle languages", Type: FieldText, Placeholder: "en,ja", Group: "Subtitles"},
		{Key: "autoSubs", Label: "Write auto-generated subtitles", Type: FieldCheckbox, Group: "Subtitles"},
		{Key: "embedSubs", Label: "Embed subtitles", Type: FieldCheckbox, Group: "Embed"},
		{Key: "embedThumbnail", Label: "Embed thumbnail", Type: FieldCheckbox, Group: "Embed"},
		{Key: "embedMetadata", Label: "Embed metadata", Type: FieldCheckbox, Group: "Embed"},
		{Key: "writeThumbnail", Label: "Write thumbnail file", Type: FieldCheckbox, Group: "Files"},
		{Key: "writeInfoJson", Label: "Write info JSON", Type: FieldCheckbox, Group: "Files"},
		{Key: "noPlaylist", Label: "Single video only (--no-playlist)", Type: FieldCheckbox, Group: "Playlist"},
		{Key: "playlistItems", Label: "Playlist items", Type: FieldText, Placeholder: "1-5,8", Group: "Playlist"},
		{Key: "sponsorblockRemove", Label: "SponsorBlock remove", Type: FieldText, Placeholder: "sponsor,intro", Group: "Network"},
		{Key: "limitRate", Label: "Rate limit", Type: FieldText, Placeholder: "2M", Group: "Network"},
		{Key: "proxy", Label: "Proxy", Type: FieldText, Placeholder: "socks5://127.0.0.1:1080", Group: "Network"},
		{Key: "downloadArchive", Label: "Download archive file", Type: FieldText, Group: "Network"},
		{Key: "liveFromStart", Label: "Record live from start", Type: FieldCheckbox, Group: "Network"},
		{Key: "cookiesFile", Label: "Cookies file", Type: FieldText, Group: "Cookies"},
		{Key: "cookiesFromBrowser", Label: "Cookies from browser", Type: FieldSelect, Choices: []Choice{
			{Value: "", Label: "None"}, {Value: "firefox", Label: "Firefox"}, {Value: "chrome", Label: "Chrome"}, {Value: "edge", Label: "Edge"}, {Value: "safari", Label: "Safari"},
		}, Group: "Cookies"},
		{Key: "useAria2c", Label: "Use aria2c downloader", Type: FieldCheckbox, Group: "Network"},
		{Key: "extra", Label: "Extra options", Type: FieldText, Group: "Extra"},
	}
}

func (ytdlpBuilder) Presets() []Preset {
	return []Preset{
		{Key: "audio-mp3", Name: "Audio (MP3)", Description: "Extract best audio as MP3",
			Overlay: json.RawMessage(`{"audioOnly":true,"format":"mp3","audioQuality":"0"}`)},
		{Key: "best-mp4", Name: "Best video (MP4)", Description: "Best video and audio merged into MP4",
			Overlay: json.RawMessage(`{"audioOnly":false,"format":"bestvideo+bestaudio","mergeFormat":"mp4"}`)},
		{Key: "playlist-audio", Name: "Playlist audio", Description: "Whole playlist as M4A with an index prefix",
			Overlay: json.RawMessage(`{"audioOnly":true,"format":"m4a","outputTemplate":"%(playlist_index)s - %(title)s.%(ext)s"}`)},
		{Key: "archive", Name: "Channel archive", Description: "Skip entries already in the archive file, keep metadata",
			Overlay: json.RawMessage(`{"downloadArchive":"archive.txt","writeInfoJson":true,"embedMetadata":true}`)},
		{Key: "clean-tv", Name: "Sponsor-free TV", Description: "Remove sponsor segments, embed everything",
			Overlay: json.RawMessage(`{"sponsorblockRemove":"sponsor,intro,outro","embedSubs":true,"embedThumbnail":true,"embedMetadata":true}`)},
	}
}

// Compile flag order: mode, output, subtitles, embed, write-file, playlist,
// sponsorblock, rate/proxy/archive/live, cookies, external downloader,
// extra, URL. The URL is deliberately left unquoted.
func (ytdlpBuilder) Compile(opts any) string {
	o := opts.(*YtdlpOptions)
	if o.URL == "" {
		return "# Please specify a URL"
	}

	l := command.New("yt-dlp")
	if o.AudioOnly {
		l.Flag("-x")
		l.FlagValue("--audio-format", o.Format)
		l.FlagValue("--audio-quality", o.AudioQuality)
	} else {
		l.FlagValue("-f", o.Format)
		l.FlagValue("--merge-output-format", o.MergeFormat)
	}
	l.FlagValue("-P", o.OutputPath)
	l.FlagValue("-o", o.OutputTemplate)

	l.FlagIf("--write-subs", o.WriteSubs)
	if o.WriteSubs {
		l.FlagValue("--sub-langs", o.SubLangs)
	}
	l.FlagIf("--write-auto-subs", o.AutoSubs)

	l.FlagIf("--embed-subs", o.EmbedSubs)
	l.FlagIf("--embed-thumbnail", o.EmbedThumbnail)
	l.FlagIf("--embed-metadata", o.EmbedMetadata)

	l.FlagIf("--write-thumbnail", o.WriteThumbnail)
	l.FlagIf("--write-info-json", o.WriteInfoJSON)

	l.FlagIf("--no-playlist", o.NoPlaylist)
	l.FlagValue("--playlist-items", o.PlaylistItems)

	l.FlagValue("--sponsorblock-remove", o.SponsorblockRemove)

	l.FlagValue("--limit-rate", o.LimitRate)
	l.FlagValue("--proxy", o.Proxy)
	l.FlagValue("--download-archive", o.DownloadArchive)
	l.FlagIf("--live-from-start", o.LiveFromStart)

	l.FlagValue("--cookies", o.CookiesFile)
	l.FlagValue("--cookies-from-browser", o.CookiesFromBrowser)

	if o.UseAria2c {
		l.FlagValue("--external-downloader", "aria2c")
	}

	l.Raw(o.Extra)
	l.Arg(o.URL)
	return l.String()
}
