package builder

import (
	"encoding/json"

	"github.com/minagishl/command-builder/command"
)

// Stream handling modes shared by the video and audio branches.
const (
	StreamEncode = "encode"
	StreamCopy   = "copy"
	StreamNone   = "none"
)

// FfmpegOptions is the flat options record of the transcoder builder.
type FfmpegOptions struct {
	InputFile    string `json:"inputFile"`
	OutputFile   string `json:"outputFile"`
	Loglevel     string `json:"loglevel"`
	Threads      string `json:"threads"`
	StartTime    string `json:"startTime"`
	Duration     string `json:"duration"`
	VideoMode    string `json:"videoMode"`
	VideoCodec   string `json:"videoCodec"`
	CRF          string `json:"crf"`
	Preset       string `json:"preset"`
	VideoBitrate string `json:"videoBitrate"`
	FPS          string `json:"fps"`
	AudioMode    string `json:"audioMode"`
	AudioCodec   string `json:"audioCodec"`
	AudioBitrate string `json:"audioBitrate"`
	Format       string `json:"format"`
	Overwrite    bool   `json:"overwrite"`
	VideoFilter  string `json:"videoFilter"`
	AudioFilter  string `json:"audioFilter"`
	Extra        string `json:"extra"`
}

type ffmpegBuilder struct{}

func (ffmpegBuilder) Info() Info {
	return Info{
		Key:         "ffmpeg",
		Title:       "FFmpeg",
		Tool:        "ffmpeg",
		Description: "Convert, trim and re-encode audio and video files",
		Available:   true,
	}
}

func (ffmpegBuilder) NewOptions() any {
	return &FfmpegOptions{
		OutputFile: "output.mp4",
		VideoMode:  StreamEncode,
		AudioMode:  StreamEncode,
	}
}

func (ffmpegBuilder) Fields() []Field {
	streamChoices := []Choice{
		{Value: StreamEncode, Label: "Re-encode"},
		{Value: StreamCopy, Label: "Copy stream"},
		{Value: StreamNone, Label: "Remove stream"},
	}
	return []Field{
		{Key: "inputFile", Label: "Input file", Type: FieldText, Placeholder: "input.mp4", Group: "Files"},
		{Key: "outputFile", Label: "Output file", Type: FieldText, Group: "Files"},
		{Key: "loglevel", Label: "Log level", Type: FieldSelect, Choices: []Choice{
			{Value: "", Label: "Default"}, {Value: "quiet", Label: "quiet"}, {Value: "error", Label: "error"}, {Value: "warning", Label: "warning"}, {Value: "info", Label: "info"},
		}, Group: "Global"},
		{Key: "threads", Label: "Threads", Type: FieldText, Group: "Global"},
		{Key: "startTime", Label: "Start time (-ss)", Type: FieldText, Placeholder: "00:00:10", Group: "Trim"},
		{Key: "duration", Label: "Duration (-t)", Type: FieldText, Placeholder: "30", Group: "Trim"},
		{Key: "videoMode", Label: "Video stream", Type: FieldSelect, Choices: streamChoices, Group: "Video"},
		{Key: "videoCodec", Label: "Video codec", Type: FieldSelect, Choices: []Choice{
			{Value: "", Label: "Default"}, {Value: "libx264", Label: "H.264"}, {Value: "libx265", Label: "H.265"}, {Value: "libvpx-vp9", Label: "VP9"}, {Value: "libaom-av1", Label: "AV1"},
		}, Group: "Video"},
		{Key: "crf", Label: "CRF", Type: FieldText, Placeholder: "23", Group: "Video"},
		{Key: "preset", Label: "Encoder preset", Type: FieldSelect, Choices: []Choice{
			{Value: "", Label: "Default"}, {Value: "ultrafast", Label: "ultrafast"}, {Value: "fast", Label: "fast"}, {Value: "medium", Label: "medium"}, {Value: "slow", Label: "slow"}, {Value: "veryslow", Label: "veryslow"},
		}, Group: "Video"},
		{Key: "videoBitrate", Label: "Video bitrate (-b:v)", Type: FieldText, Placeholder: "2500k", Group: "Video"},
		{Key: "fps", Label: "Frame rate (-r)", Type: FieldText, Group: "Video"},
		{Key: "audioMode", Label: "Audio stream", Type: FieldSelect, Choices: streamChoices, Group: "Audio"},
		{Key: "audioCodec", Label: "Audio codec", Type: FieldSelect, Choices: []Choice{
			{Value: "", Label: "Default"}, {Value: "aac", Label: "AAC"}, {Value: "libmp3lame", Label: "MP3"}, {Value: "libopus", Label: "Opus"}, {Value: "flac", Label: "FLAC"},
		}, Group: "Audio"},
		{Key: "audioBitrate", Label: "Audio bitrate (-b:a)", Type: FieldText, Placeholder: "192k", Group: "Audio"},
		{Key: "format", Label: "Container format (-f)", Type: FieldText, Group: "Output"},
		{Key: "overwrite", Label: "Overwrite output (-y)", Type: FieldCheckbox, Group: "Output"},
		{Key: "videoFilter", Label: "Video filter (-vf)", Type: FieldText, Placeholder: "scale=1280:-2", Group: "Filters"},
		{Key: "audioFilter", Label: "Audio filter (-af)", Type: FieldText, Placeholder: "volume=1.5", Group: "Filters"},
		{Key: "extra", Label: "Extra options", Type: FieldText, Group: "Extra"},
	}
}

func (ffmpegBuilder) Presets() []Preset {
	return []Preset{
		{Key: "web-mp4", Name: "Web MP4", Description: "H.264 + AAC, sensible quality for the web",
			Overlay: json.RawMessage(`{"videoMode":"encode","videoCodec":"libx264","crf":"23","preset":"medium","audioMode":"encode","audioCodec":"aac","audioBitrate":"128k","outputFile":"output.mp4","overwrite":true}`)},
		{Key: "remux", Name: "Remux (no re-encode)", Description: "Copy both streams into a new container",
			Overlay: json.RawMessage(`{"videoMode":"copy","audioMode":"copy","crf":"","preset":"","videoBitrate":"","audioBitrate":""}`)},
		{Key: "extract-audio", Name: "Extract audio (MP3)", Description: "Drop video, encode audio to MP3",
			Overlay: json.RawMessage(`{"videoMode":"none","audioMode":"encode","audioCodec":"libmp3lame","audioBitrate":"192k","outputFile":"output.mp3"}`)},
		{Key: "half-size", Name: "Half size", Description: "Scale to half resolution, H.265",
			Overlay: json.RawMessage(`{"videoMode":"encode","videoCodec":"libx265","crf":"28","videoFilter":"scale=iw/2:-2"}`)},
	}
}

// Compile flag order: global, input, trim, video branch, audio branch,
// container, overwrite, filters, extra, output.
func (ffmpegBuilder) Compile(opts any) string {
	o := opts.(*FfmpegOptions)
	if o.InputFile == "" {
		return "# Please specify an input file"
	}

	l := command.New("ffmpeg")
	l.FlagValue("-loglevel", o.Loglevel)
	l.FlagValue("-threads", o.Threads)
	l.FlagQuoted("-i", o.InputFile)
	l.FlagValue("-ss", o.StartTime)
	l.FlagValue("-t", o.Duration)

	// Exactly one video branch: copy, re-encode, or no video.
	switch o.VideoMode {
	case StreamCopy:
		l.FlagValue("-c:v", "copy")
	case StreamNone:
		l.Flag("-vn")
	default:
		l.FlagValue("-c:v", o.VideoCodec)
		l.FlagValue("-crf", o.CRF)
		l.FlagValue("-preset", o.Preset)
		l.FlagValue("-b:v", o.VideoBitrate)
		l.FlagValue("-r", o.FPS)
	}

	switch o.AudioMode {
	case StreamCopy:
		l.FlagValue("-c:a", "copy")
	case StreamNone:
		l.Flag("-an")
	default:
		l.FlagValue("-c:a", o.AudioCodec)
		l.FlagValue("-b:a", o.AudioBitrate)
	}

	l.FlagValue("-f", o.Format)
	l.FlagIf("-y", o.Overwrite)
	l.FlagValue("-vf", o.VideoFilter)
	l.FlagValue("-af", o.AudioFilter)
	l.Raw(o.Extra)
	l.Quoted(o.OutputFile)
	return l.String()
}
