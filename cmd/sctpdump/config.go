package main

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
)

// config controls how captures are decoded and displayed.
type config struct {
	// Strict makes a checksum mismatch a decode failure instead of a
	// warning.
	Strict bool
	// HexInput treats capture files as hex dumps rather than raw bytes.
	HexInput bool
	// ShowNotices prints skip-and-report chunks the decoder surfaced.
	ShowNotices bool
	// Parallelism bounds concurrent file decoding.
	Parallelism int
}

func defaultConfig() config {
	return config{
		ShowNotices: true,
		Parallelism: runtime.NumCPU(),
	}
}

type fileConfig struct {
	Strict      bool `toml:"strict"`
	HexInput    bool `toml:"hex_input"`
	ShowNotices bool `toml:"show_notices"`
	Parallelism int  `toml:"parallelism"`
}

// loadConfig overlays a TOML file onto the defaults. Absent keys keep
// their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("hex_input") {
		cfg.HexInput = raw.HexInput
	}
	if meta.IsDefined("show_notices") {
		cfg.ShowNotices = raw.ShowNotices
	}
	if meta.IsDefined("parallelism") {
		if raw.Parallelism < 1 {
			return config{}, fmt.Errorf("load config: parallelism must be positive, got %d", raw.Parallelism)
		}
		cfg.Parallelism = raw.Parallelism
	}
	return cfg, nil
}
