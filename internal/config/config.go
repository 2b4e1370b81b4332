// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "pdfworkflow"
	ConfigFileName = "config.yaml"

	DefaultDPI         = 300
	DefaultImageFormat = "png"
	DefaultJPEGQuality = 95
	DefaultCropMargin  = "0"
	DefaultCropBinary  = "pdfcrop"
	DefaultInfoBinary  = "pdfinfo"
)

// DefaultCropSearchPaths are checked, in order, when pdfcrop is not on PATH.
var DefaultCropSearchPaths = []string{
	"/Library/TeX/texbin/pdfcrop",
	"/usr/local/texlive/2024/bin/universal-darwin/pdfcrop",
	"/usr/local/texlive/2023/bin/universal-darwin/pdfcrop",
	"/usr/local/bin/pdfcrop",
	"/opt/homebrew/bin/pdfcrop",
	"/usr/bin/pdfcrop",
}

type Config struct {
	// OutputDir overrides the per-file default of writing next to the input.
	OutputDir string `yaml:"output_dir"`
	// DocsDir holds the preview pages shown by the launcher.
	DocsDir   string    `yaml:"docs_dir"`
	Rasterize Rasterize `yaml:"rasterize"`
	Crop      Crop      `yaml:"crop"`
}

type Rasterize struct {
	DPI         int    `yaml:"dpi"`
	Format      string `yaml:"format"`
	JPEGQuality int    `yaml:"jpeg_quality"`
}

type Crop struct {
	Margin          string   `yaml:"margin"`
	Binary          string   `yaml:"binary"`
	SearchPaths     []string `yaml:"search_paths"`
	PageCountBinary string   `yaml:"page_count_binary"`
}

func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Discover loads the user's config file from the XDG config directories
// (pdfworkflow/config.yaml). Defaults are returned when no file exists.
func Discover() (*Config, string, error) {
	path, err := xdg.SearchConfigFile(AppName + "/" + ConfigFileName)
	if err != nil {
		cfg := Default()
		return &cfg, "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func (c *Config) applyDefaults() {
	if c.Rasterize.DPI == 0 {
		c.Rasterize.DPI = DefaultDPI
	}
	if c.Rasterize.Format == "" {
		c.Rasterize.Format = DefaultImageFormat
	}
	c.Rasterize.Format = strings.ToLower(c.Rasterize.Format)
	if c.Rasterize.JPEGQuality == 0 {
		c.Rasterize.JPEGQuality = DefaultJPEGQuality
	}
	if c.Crop.Margin == "" {
		c.Crop.Margin = DefaultCropMargin
	}
	if c.Crop.Binary == "" {
		c.Crop.Binary = DefaultCropBinary
	}
	if c.Crop.SearchPaths == nil {
		c.Crop.SearchPaths = append([]string(nil), DefaultCropSearchPaths...)
	}
	if c.Crop.PageCountBinary == "" {
		c.Crop.PageCountBinary = DefaultInfoBinary
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Rasterize.DPI <= 0 {
		errs = append(errs, fmt.Errorf("rasterize.dpi must be positive, got %d", c.Rasterize.DPI))
	}
	switch c.Rasterize.Format {
	case "png", "jpeg", "jpg":
	default:
		errs = append(errs, fmt.Errorf("rasterize.format %q is not supported", c.Rasterize.Format))
	}
	if c.Rasterize.JPEGQuality < 1 || c.Rasterize.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("rasterize.jpeg_quality must be between 1 and 100, got %d", c.Rasterize.JPEGQuality))
	}
	if strings.TrimSpace(c.Crop.Binary) == "" {
		errs = append(errs, errors.New("crop.binary must not be empty"))
	}
	return errors.Join(errs...)
}
