package builder

import (
	"encoding/json"

	"github.com/minagishl/command-builder/command"
)

// MagickOptions is the flat options record of the image processor builder.
type MagickOptions struct {
	InputFile  string `json:"inputFile"`
	OutputFile string `json:"outputFile"`
	Resize     string `json:"resize"`
	Crop       string `json:"crop"`
	Rotate     string `json:"rotate"`
	Flip       bool   `json:"flip"`
	Flop       bool   `json:"flop"`
	Grayscale  bool   `json:"grayscale"`
	Quality    string `json:"quality"`
	Density    string `json:"density"`
	Blur       string `json:"blur"`
	Sharpen    string `json:"sharpen"`
	Background string `json:"background"`
	Flatten    bool   `json:"flatten"`
	Strip      bool   `json:"strip"`
	Extra      string `json:"extra"`
}

type magickBuilder struct{}

func (magickBuilder) Info() Info {
	return Info{
		Key:         "magick",
		Title:       "ImageMagick",
		Tool:        "magick",
		Description: "Resize, crop and convert images",
		Available:   true,
	}
}

func (magickBuilder) NewOptions() any {
	return &MagickOptions{
		OutputFile: "output.png",
	}
}

func (magickBuilder) Fields() []Field {
	return []Field{
		{Key: "inputFile", Label: "Input image", Type: FieldText, Placeholder: "input.jpg", Group: "Files"},
		{Key: "outputFile", Label: "Output image", Type: FieldText, Group: "Files"},
		{Key: "resize", Label: "Resize geometry", Type: FieldText, Placeholder: "800x600", Group: "Geometry"},
		{Key: "crop", Label: "Crop geometry", Type: FieldText, Placeholder: "400x300+10+10", Group: "Geometry"},
		{Key: "rotate", Label: "Rotate degrees", Type: FieldText, Placeholder: "90", Group: "Geometry"},
		{Key: "flip", Label: "Flip vertically", Type: FieldCheckbox, Group: "Geometry"},
		{Key: "flop", Label: "Flip horizontally", Type: FieldCheckbox, Group: "Geometry"},
		{Key: "grayscale", Label: "Convert to grayscale", Type: FieldCheckbox, Group: "Color"},
		{Key: "quality", Label: "Quality", Type: FieldText, Placeholder: "85", Group: "Output"},
		{Key: "density", Label: "Density (DPI)", Type: FieldText, Placeholder: "300", Group: "Output"},
		{Key: "blur", Label: "Blur", Type: FieldText, Placeholder: "0x4", Group: "Effects"},
		{Key: "sharpen", Label: "Sharpen", Type: FieldText, Placeholder: "0x2", Group: "Effects"},
		{Key: "background", Label: "Background color", Type: FieldText, Placeholder: "white", Group: "Color"},
		{Key: "flatten", Label: "Flatten layers", Type: FieldCheckbox, Group: "Color"},
		{Key: "strip", Label: "Strip metadata", Type: FieldCheckbox, Group: "Output"},
		{Key: "extra", Label: "Extra options", Type: FieldText, Group: "Extra"},
	}
}

func (magickBuilder) Presets() []Preset {
	return []Preset{
		{Key: "web-thumb", Name: "Web thumbnail", Description: "Small JPEG thumbnail, metadata stripped",
			Overlay: json.RawMessage(`{"resize":"320x320","quality":"80","strip":true,"outputFile":"thumb.jpg"}`)},
		{Key: "grayscale", Name: "Grayscale", Description: "Convert to grayscale",
			Overlay: json.RawMessage(`{"grayscale":true}`)},
		{Key: "print-300dpi", Name: "Print (300dpi)", Description: "High density, flattened on white",
			Overlay: json.RawMessage(`{"density":"300","background":"white","flatten":true,"quality":"95"}`)},
		{Key: "social", Name: "Social square", Description: "Square crop scaled for social posts",
			Overlay: json.RawMessage(`{"resize":"1080x1080^","crop":"1080x1080+0+0","quality":"90","strip":true,"outputFile":"post.jpg"}`)},
	}
}

func (magickBuilder) Compile(opts any) string {
	o := opts.(*MagickOptions)
	if o.InputFile == "" {
		return "# Please specify an input file"
	}

	l := command.New("magick")
	l.Quoted(o.InputFile)
	l.FlagValue("-resize", o.Resize)
	l.FlagValue("-crop", o.Crop)
	l.FlagValue("-rotate", o.Rotate)
	l.FlagIf("-flip", o.Flip)
	l.FlagIf("-flop", o.Flop)
	if o.Grayscale {
		l.FlagValue("-colorspace", "Gray")
	}
	l.FlagValue("-quality", o.Quality)
	l.FlagValue("-density", o.Density)
	l.FlagValue("-blur", o.Blur)
	l.FlagValue("-sharpen", o.Sharpen)
	l.FlagValue("-background", o.Background)
	l.FlagIf("-flatten", o.Flatten)
	l.FlagIf("-strip", o.Strip)
	l.Raw(o.Extra)
	l.Quoted(o.OutputFile)
	return l.String()
}
