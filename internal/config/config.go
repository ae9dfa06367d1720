package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

const (
	defaultFiller = 'X'
	envFiller     = "WORDSEARCH_FILLER"
	envSeed       = "WORDSEARCH_SEED"
	envColor      = "WORDSEARCH_COLOR"
)

// Config aggregates the tunables of the generator and the menu.
type Config struct {
	// Filler marks non-word cells in the solution grid.
	Filler rune
	// Seed fixes the random padding letters; zero means a fresh seed per run.
	Seed uint64
	// Color enables coloured notices in the console menu.
	Color bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{Filler: defaultFiller}
}

// Load builds a Config from an optional JSON file path plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if fileCfg.Filler != 0 {
			cfg.Filler = fileCfg.Filler
		}
		if fileCfg.Seed != 0 {
			cfg.Seed = fileCfg.Seed
		}
		cfg.Color = fileCfg.Color
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envFiller); v != "" {
		if r, err := parseFiller(v); err == nil {
			cfg.Filler = r
		} else {
			log.Printf("invalid %s value %q: %v", envFiller, v, err)
		}
	}

	if v := os.Getenv(envSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		} else {
			log.Printf("invalid %s value %q: %v", envSeed, v, err)
		}
	}

	if v := os.Getenv(envColor); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Color = on
		} else {
			log.Printf("invalid %s value %q: %v", envColor, v, err)
		}
	}
}

type fileConfig struct {
	Filler string  `json:"filler"`
	Seed   *uint64 `json:"seed"`
	Color  bool    `json:"color"`
}

func loadFromFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	if raw.Filler != "" {
		r, err := parseFiller(raw.Filler)
		if err != nil {
			return cfg, fmt.Errorf("parse filler: %w", err)
		}
		cfg.Filler = r
	}
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	cfg.Color = raw.Color

	return cfg, nil
}

// parseFiller accepts exactly one printable, non-space character so that
// saved solution grids stay parseable.
func parseFiller(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("filler must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return 0, errors.New("filler must be a printable, non-space character")
	}
	return r, nil
}
