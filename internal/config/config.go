// Package config loads simulation parameters from JSON or YAML files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/anthropics/outbreak-engine/internal/domain"
)

// Load reads a parameter file, fills unset fields with the model defaults,
// and validates. The format is chosen by extension: .yaml/.yml is parsed as
// YAML, everything else as JSON.
//
// Decoding starts from the defaults, so a file only needs the fields it wants
// to override; an explicit zero (e.g. "horizon": 0) is respected.
func Load(path string) (domain.Params, error) {
	p := domain.DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("parse config JSON: %w", err)
		}
	}

	if err := p.Validate(); err != nil {
		return p, &domain.SimError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s (%s): %v", domain.ErrConfigInvalid.Message, path, err),
		}
	}
	return p, nil
}
