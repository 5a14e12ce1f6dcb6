// Package config loads vtxt settings from YAML files.
//
// A typical file looks like this:
//   fonts:
//     - slot: 0
//       path: fonts/VeraMono.ttf
//       size: 16
//     - slot: 1
//       path: fonts/NotoSansCJK.ttc
//       index: 2
//       size: 12
//   text:
//     color: "#FFFFFF"
//     shadow: "#202020"
//     wrap_width: 320
//
// Relative font paths are resolved against the directory of the
// configuration file.
package config

import "bytes"
import "errors"
import "fmt"
import "io"
import "os"
import "path/filepath"
import "strconv"

import "gopkg.in/yaml.v3"

import "github.com/vultureui/vtxt/errs"
import "github.com/vultureui/vtxt/font"
import "github.com/vultureui/vtxt/surface"

// A font to be loaded into a registry slot.
type FontConfig struct {
	Slot  int     `yaml:"slot"`
	Path  string  `yaml:"path"`
	Index int     `yaml:"index"`
	Size  float64 `yaml:"size"`
}

// Text drawing settings. Colors use the "#RRGGBB" notation.
type TextConfig struct {
	Color     string `yaml:"color"`
	Shadow    string `yaml:"shadow"`
	WrapWidth int    `yaml:"wrap_width"`
}

type Config struct {
	Fonts []FontConfig `yaml:"fonts"`
	Text  TextConfig   `yaml:"text"`

	dir string // base directory for relative font paths
}

// Returns the configuration used for any settings missing from a file:
// white text with a black shadow, wrapped at 320 pixels, and no fonts.
func Default() *Config {
	return &Config{
		Text: TextConfig{
			Color:     "#FFFFFF",
			Shadow:    "#000000",
			WrapWidth: 320,
		},
	}
}

// Reads and parses the configuration file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New("config.Load", errs.KindConfig, err)
	}
	config, err := Parse(data)
	if err != nil {
		return nil, err
	}
	config.dir = filepath.Dir(path)
	return config, nil
}

// Parses and validates the given YAML data. Unknown fields are
// rejected, and missing settings keep their [Default]() values.
func Parse(data []byte) (*Config, error) {
	const op = "config.Parse"
	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.New(op, errs.KindConfig, err)
	}
	err = config.Validate()
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Checks that font slots are in range and unique, font sizes are
// positive, colors are well formed and the wrap width is positive.
func (self *Config) Validate() error {
	const op = "config.Validate"
	var used [font.MaxFonts]bool
	for i, fontConfig := range self.Fonts {
		if fontConfig.Slot < 0 || fontConfig.Slot >= font.MaxFonts {
			return errs.New(op, errs.KindConfig, fmt.Errorf("fonts[%d]: %w", i, errs.ErrInvalidSlot))
		}
		if used[fontConfig.Slot] {
			return errs.New(op, errs.KindConfig, fmt.Errorf("fonts[%d]: slot %d used twice", i, fontConfig.Slot))
		}
		used[fontConfig.Slot] = true
		if fontConfig.Path == "" {
			return errs.New(op, errs.KindConfig, fmt.Errorf("fonts[%d]: missing path", i))
		}
		if fontConfig.Index < 0 {
			return errs.New(op, errs.KindConfig, fmt.Errorf("fonts[%d]: negative index", i))
		}
		if fontConfig.Size <= 0 {
			return errs.New(op, errs.KindConfig, fmt.Errorf("fonts[%d]: size must be positive", i))
		}
	}

	_, _, _, err := parseHexColor(self.Text.Color)
	if err != nil {
		return errs.New(op, errs.KindConfig, fmt.Errorf("text.color: %w", err))
	}
	_, _, _, err = parseHexColor(self.Text.Shadow)
	if err != nil {
		return errs.New(op, errs.KindConfig, fmt.Errorf("text.shadow: %w", err))
	}
	if self.Text.WrapWidth <= 0 {
		return errs.New(op, errs.KindConfig, errors.New("text.wrap_width must be positive"))
	}
	return nil
}

// Loads every configured font into the given registry. All fonts are
// attempted even if some fail; the returned error joins all failures.
func (self *Config) LoadFonts(registry *font.Registry) error {
	var failures []error
	for _, fontConfig := range self.Fonts {
		path := fontConfig.Path
		if self.dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(self.dir, path)
		}
		err := registry.Load(fontConfig.Slot, path, fontConfig.Index, fontConfig.Size)
		if err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// Returns the text and shadow colors packed for the given format.
func (self *Config) Colors(format *surface.PixelFormat) (text, shadow surface.Pixel, err error) {
	const op = "config.Colors"
	r, g, b, err := parseHexColor(self.Text.Color)
	if err != nil {
		return 0, 0, errs.New(op, errs.KindConfig, err)
	}
	text = format.MapRGB(r, g, b)
	r, g, b, err = parseHexColor(self.Text.Shadow)
	if err != nil {
		return 0, 0, errs.New(op, errs.KindConfig, err)
	}
	shadow = format.MapRGB(r, g, b)
	return text, shadow, nil
}

// Parses colors in "#RRGGBB" format.
func parseHexColor(hex string) (r, g, b uint8, err error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("invalid color '%s', expected #RRGGBB", hex)
	}
	value, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color '%s', expected #RRGGBB", hex)
	}
	return uint8(value >> 16), uint8(value >> 8), uint8(value), nil
}
