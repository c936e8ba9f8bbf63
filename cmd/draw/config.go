// seehuhn.de/go/draw - a turtle graphics language inspired by Forth and Logo
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/draw"
)

// config holds the settings which can be given in a configuration file.
type config struct {
	LogBudget    int     `yaml:"log_budget"`
	MaxCallDepth int     `yaml:"max_call_depth"`
	Trace        bool    `yaml:"trace"`
	Margin       float64 `yaml:"margin"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	History      string  `yaml:"history"`
}

func defaultConfig() *config {
	return &config{
		LogBudget:    draw.DefaultLogBudget,
		MaxCallDepth: draw.DefaultMaxCallDepth,
		Margin:       8,
		StrokeWidth:  1,
		History:      ".draw_history",
	}
}

// loadConfig reads the configuration file at path.  An empty path gives
// the default configuration.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	err = decodeConfig(fd, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig reads YAML settings from r into cfg.  Settings missing
// from the input keep their previous values.
func decodeConfig(r io.Reader, cfg *config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && err != io.EOF {
		return err
	}
	return cfg.validate()
}

func (cfg *config) validate() error {
	var errs []error
	if cfg.LogBudget < 0 {
		errs = append(errs, fmt.Errorf("log_budget must not be negative, got %d", cfg.LogBudget))
	}
	if cfg.MaxCallDepth < 1 {
		errs = append(errs, fmt.Errorf("max_call_depth must be positive, got %d", cfg.MaxCallDepth))
	}
	if cfg.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin must not be negative, got %g", cfg.Margin))
	}
	if cfg.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width must be positive, got %g", cfg.StrokeWidth))
	}
	return errors.Join(errs...)
}
