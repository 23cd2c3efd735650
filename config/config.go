// Package config loads the optional ini configuration of the conversion
// tools. Every key has a default, so a missing file or section is not an
// error.
package config

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"badc0de.net/pkg/go-ssbp/sspj"
)

const defaultConfig = `
[input]
; Locale directory searched for texture archives after the common one.
locale = EN
; Overrides the texture directory derived from the input path.
texture_dir =
; Read texture archives from directories they were unpacked into.
extracted_archives = false

[convert]
workers = 4
zip = false

[project]
export_base_directory = Export
render_bg_color = FF606060
effect_grid_size = 50
max_image_width = 8192
max_image_height = 8192
max_image_file_size = 73400320
`

type Input struct {
	Locale            string `ini:"locale"`
	TextureDir        string `ini:"texture_dir"`
	ExtractedArchives bool   `ini:"extracted_archives"`
}

type Convert struct {
	Workers int  `ini:"workers"`
	Zip     bool `ini:"zip"`
}

type Project struct {
	ExportBaseDirectory string `ini:"export_base_directory"`
	RenderBGColor       string `ini:"render_bg_color"`
	EffectGridSize      int    `ini:"effect_grid_size"`
	MaxImageWidth       int    `ini:"max_image_width"`
	MaxImageHeight      int    `ini:"max_image_height"`
	MaxImageFileSize    int64  `ini:"max_image_file_size"`
}

type Config struct {
	Input   Input
	Convert Convert
	Project Project
}

// Default returns the built-in configuration.
func Default() *Config {
	c, err := load(nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads the configuration at path on top of the defaults. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}
	glog.V(1).Infof("loading configuration from %s", path)
	return load(path)
}

func load(path interface{}) (*Config, error) {
	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}
	sources := []interface{}{[]byte(defaultConfig)}
	if path != nil {
		sources = append(sources, path)
	}
	f, err := ini.LoadSources(options, sources[0], sources[1:]...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	c := &Config{}
	for _, s := range []struct {
		name string
		dst  interface{}
	}{
		{"input", &c.Input},
		{"convert", &c.Convert},
		{"project", &c.Project},
	} {
		if err := f.Section(s.name).MapTo(s.dst); err != nil {
			return nil, errors.Wrapf(err, "reading section [%s]", s.name)
		}
	}
	if c.Convert.Workers < 1 {
		return nil, errors.Errorf("convert.workers must be at least 1, got %d", c.Convert.Workers)
	}
	return c, nil
}

// Settings returns the project settings the configuration asks for.
func (c *Config) Settings() sspj.Settings {
	s := sspj.DefaultSettings()
	p := c.Project
	if p.ExportBaseDirectory != "" {
		s.ExportBaseDirectory = p.ExportBaseDirectory
	}
	if p.RenderBGColor != "" {
		s.RenderBGColor = p.RenderBGColor
	}
	if p.EffectGridSize > 0 {
		s.EffectGridSize = p.EffectGridSize
	}
	if p.MaxImageWidth > 0 {
		s.MaxLoadableImageWidth = p.MaxImageWidth
	}
	if p.MaxImageHeight > 0 {
		s.MaxLoadableImageHeight = p.MaxImageHeight
	}
	if p.MaxImageFileSize > 0 {
		s.MaxLoadableImageFileSize = p.MaxImageFileSize
	}
	return s
}
