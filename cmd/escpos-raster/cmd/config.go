package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/thermaldot/escpos-raster/raster"
)

type fileConfig struct {
	MaxWidth  int `toml:"max_width"`
	Threshold int `toml:"threshold"`
	Mode      int `toml:"mode"`
}

// loadConfig overlays values from a TOML file onto base. Only keys
// present in the file are applied.
func loadConfig(path string, base raster.Config) (raster.Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return raster.Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("max_width") {
		base.MaxWidth = raw.MaxWidth
	}
	if meta.IsDefined("threshold") {
		base.Threshold = raw.Threshold
	}
	if meta.IsDefined("mode") {
		base.Mode = raster.Mode(raw.Mode)
	}
	return base, nil
}
