// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/term"

	"laptudirm.com/x/fairplay/pkg/commit"
)

// Receipt output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the defaults of fairplay's command line flags.
type Config struct {
	KeyBytes int    `env:"FAIRPLAY_KEY_BYTES" envDefault:"32"`
	Output   string `env:"FAIRPLAY_OUTPUT" envDefault:"text"`
	Color    string `env:"FAIRPLAY_COLOR" envDefault:"auto"`
}

// Load reads the Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that every field of the Config holds a usable value.
func (cfg Config) Validate() error {
	if cfg.KeyBytes < commit.KeySize {
		return fmt.Errorf("config: key size must be at least %d bytes, got %d", commit.KeySize, cfg.KeyBytes)
	}

	switch cfg.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("config: unknown output format %q", cfg.Output)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: unknown color mode %q", cfg.Color)
	}

	return nil
}

// Colorize reports whether output written to w should be colored. In auto
// mode only terminals are colored.
func (cfg Config) Colorize(w io.Writer) bool {
	switch cfg.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
