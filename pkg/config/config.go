// Package config loads the sketchboard configuration file.
//
// The file is TOML. Every key is optional; missing keys keep their defaults:
//
//	[viewport]
//	width = 1200
//	height = 800
//
//	[text]
//	font_size = 12
//	max_lines = 2
//	overflow = "…"
//	text_end_gap = 4
//	align = "center"
//
//	[types.box]
//	min = [40, 40]
//	default = [120, 60]
//
//	[server]
//	addr = ":8080"
//
// Item types without a [types] entry fall back to 40x40 for both sizes.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

// Config holds the application configuration.
type Config struct {
	Viewport Viewport             `toml:"viewport"`
	Text     Text                 `toml:"text"`
	Types    map[string]TypeSizes `toml:"types"`
	Server   Server               `toml:"server"`
}

// Viewport is the size of the rendered canvas in screen pixels.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Text holds defaults for label layout.
type Text struct {
	FontSize   float64 `toml:"font_size"`
	MaxLines   int     `toml:"max_lines"`
	Overflow   string  `toml:"overflow"`
	TextEndGap float64 `toml:"text_end_gap"`
	Align      string  `toml:"align"`
}

// TypeSizes holds the minimum and default size of one item type as [w, h].
type TypeSizes struct {
	Min     [2]float64 `toml:"min"`
	Default [2]float64 `toml:"default"`
}

// Server holds settings of the HTTP service.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 1200, Height: 800},
		Text: Text{
			FontSize: textlayout.DefaultFontSize,
			MaxLines: 2,
			Overflow: textlayout.DefaultOverflow,
			Align:    textlayout.AlignCenter.String(),
		},
		Types:  map[string]TypeSizes{},
		Server: Server{Addr: ":8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sketchboard/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate config directory")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sketchboard", FileName), nil
}

// LoadDefault reads the file at [DefaultPath]. A missing file yields the
// defaults.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		return &cfg, nil
	}
	return Load(path)
}

// Load reads configuration from path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file")
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if cfg.Types == nil {
		cfg.Types = map[string]TypeSizes{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport size must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Text.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "text.font_size must be positive")
	}
	if c.Text.MaxLines < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "text.max_lines must be at least 1")
	}
	if c.Text.TextEndGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "text.text_end_gap cannot be negative")
	}
	if _, err := textlayout.ParseAlign(c.Text.Align); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "text.align")
	}
	for name, ts := range c.Types {
		if err := ts.validate(name); err != nil {
			return err
		}
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	return nil
}

func (t TypeSizes) validate(name string) error {
	for _, v := range append(t.Min[:], t.Default[:]...) {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "types.%s: sizes cannot be negative", name)
		}
	}
	if set(t.Min) && set(t.Default) && (t.Default[0] < t.Min[0] || t.Default[1] < t.Min[1]) {
		return errors.New(errors.ErrCodeInvalidConfig, "types.%s: default size is smaller than min", name)
	}
	return nil
}

func set(s [2]float64) bool { return s[0] > 0 && s[1] > 0 }

// TextOptions returns the layout options configured under [text].
func (c *Config) TextOptions() []textlayout.Option {
	align, _ := textlayout.ParseAlign(c.Text.Align)
	return []textlayout.Option{
		textlayout.WithFontSize(c.Text.FontSize),
		textlayout.WithMaxLines(c.Text.MaxLines),
		textlayout.WithOverflow(c.Text.Overflow),
		textlayout.WithTextEndGap(c.Text.TextEndGap),
		textlayout.WithAlign(align),
	}
}

// Sizes returns a size provider backed by the [types] table.
func (c *Config) Sizes() editor.SizeProvider {
	return sizeTable(c.Types)
}

type sizeTable map[string]TypeSizes

func (t sizeTable) MinSize(typ string) editor.Size {
	if ts, ok := t[typ]; ok && set(ts.Min) {
		return editor.Size{W: ts.Min[0], H: ts.Min[1]}
	}
	return editor.DefaultItemSize
}

func (t sizeTable) DefaultSize(typ string) editor.Size {
	if ts, ok := t[typ]; ok && set(ts.Default) {
		return editor.Size{W: ts.Default[0], H: ts.Default[1]}
	}
	return t.MinSize(typ)
}
