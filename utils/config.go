package utils

import (
	"fmt"
	"os"

	"github.com/setanarut/beadgrid"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of editor settings.
//
//	width: 30
//	height: 30
//	sampler: nearest
//	alpha_threshold: 128
//	cell_size: 10
//	palette: ["#000000", "#ffffff", "#ff0000"]
type Config struct {
	Width          int      `yaml:"width"`
	Height         int      `yaml:"height"`
	Sampler        string   `yaml:"sampler"`
	AlphaThreshold uint8    `yaml:"alpha_threshold"`
	BeadSize       int      `yaml:"bead_size"`
	CellSize       int      `yaml:"cell_size"`
	Palette        []string `yaml:"palette"`
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadPalette reads only the palette list of a config file.
func LoadPalette(path string) (beadgrid.Palette, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return beadgrid.ParsePalette(cfg.Palette...)
}

// Options overlays cfg on beadgrid.DefaultOptions. Zero fields keep the
// default; alpha_threshold: 1 is the loosest import cut-off.
func (cfg Config) Options() (beadgrid.Options, error) {
	opts := beadgrid.DefaultOptions()
	if cfg.Width != 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height != 0 {
		opts.Height = cfg.Height
	}
	if cfg.Sampler != "" {
		s, err := beadgrid.SamplerByName(cfg.Sampler)
		if err != nil {
			return beadgrid.Options{}, err
		}
		opts.Sampler = s
	}
	if cfg.AlphaThreshold != 0 {
		opts.AlphaThreshold = cfg.AlphaThreshold
	}
	if cfg.BeadSize != 0 {
		opts.BeadSize = cfg.BeadSize
	}
	if len(cfg.Palette) > 0 {
		p, err := beadgrid.ParsePalette(cfg.Palette...)
		if err != nil {
			return beadgrid.Options{}, err
		}
		opts.Palette = p
	}
	return opts, nil
}

// RenderOptions returns export settings with cfg's cell size applied.
func (cfg Config) RenderOptions() beadgrid.RenderOptions {
	opts := beadgrid.DefaultRenderOptions()
	if cfg.CellSize > 0 {
		opts.CellSize = cfg.CellSize
	}
	return opts
}
