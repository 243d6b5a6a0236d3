package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
	"github.com/matzehuels/fpl/pkg/render"
)

// configFile is the name of the config file inside [configDir].
const configFile = "config.toml"

// Config holds defaults read from the config file. Zero values in the file
// keep the built-in defaults.
//
//	format = "svg"
//	orientation = "odd"
//
//	[svg]
//	scale = 40
//	stroke = "#1f2937"
//	stroke_width = 4
//	margin = 20
//	vertices = true
type Config struct {
	Format      string    `toml:"format"`
	Orientation string    `toml:"orientation"`
	SVG         SVGConfig `toml:"svg"`
}

// SVGConfig holds the SVG styling defaults.
type SVGConfig struct {
	Scale       float64 `toml:"scale"`
	Margin      float64 `toml:"margin"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Background  string  `toml:"background"`
	Vertices    bool    `toml:"vertices"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format:      formatText,
		Orientation: fpl.TopLeftEven.String(),
		SVG: SVGConfig{
			Scale:       40,
			Margin:      20,
			Stroke:      "#1f2937",
			StrokeWidth: 4,
		},
	}
}

// LoadConfig reads the config file at path over the defaults. An empty path
// means the file in the XDG config directory, which may be absent.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.merge(file)
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Orientation != "" {
		c.Orientation = o.Orientation
	}
	if o.SVG.Scale > 0 {
		c.SVG.Scale = o.SVG.Scale
	}
	if o.SVG.Margin > 0 {
		c.SVG.Margin = o.SVG.Margin
	}
	if o.SVG.Stroke != "" {
		c.SVG.Stroke = o.SVG.Stroke
	}
	if o.SVG.StrokeWidth > 0 {
		c.SVG.StrokeWidth = o.SVG.StrokeWidth
	}
	if o.SVG.Background != "" {
		c.SVG.Background = o.SVG.Background
	}
	c.SVG.Vertices = c.SVG.Vertices || o.SVG.Vertices
}

func (c *Config) validate() error {
	if err := validateFormats([]string{c.Format}); err != nil {
		return err
	}
	_, err := fpl.ParseOrientation(c.Orientation)
	return err
}

// svgOptions converts the styling defaults for a grid of the given size.
func (s SVGConfig) svgOptions(size int) []render.SVGOption {
	opts := []render.SVGOption{
		render.WithScale(s.Scale),
		render.WithMargin(s.Margin),
		render.WithStroke(s.Stroke),
		render.WithStrokeWidth(s.StrokeWidth),
	}
	if s.Background != "" {
		opts = append(opts, render.WithBackground(s.Background))
	}
	if s.Vertices {
		opts = append(opts, render.WithVertices(size))
	}
	return opts
}
