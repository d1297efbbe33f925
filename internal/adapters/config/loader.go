// Package config provides the project settings loader for wxpack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new settings loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the settings file at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrSettingsRead, err.Error()), "path", path)
	}

	var file Settingsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrSettingsParse, err.Error()), "path", path)
	}

	settings, err := toDomain(file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded settings from " + path)
	}
	return settings, nil
}

func toDomain(file Settingsfile) (domain.Settings, error) {
	if v := strings.TrimSpace(file.Version); v != "" && v != SettingsVersion {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedSettingsVersion, "invalid settings file"), "version", v)
	}

	s := domain.DefaultSettings()

	if p := strings.TrimSpace(file.Platform); p != "" {
		s.Platform = strings.ToLower(p)
	}
	if len(file.Entry) > 0 {
		s.Entry = entryPoints(file.Entry)
	}
	if file.Output.Filename != "" {
		s.Filename = file.Output.Filename
	}
	if file.Output.PublicPath != "" {
		s.PublicPath = file.Output.PublicPath
	}
	if file.Workers > 0 {
		s.Workers = file.Workers
	}
	if file.Warmup != nil {
		s.Warmup = *file.Warmup
	}

	for className, names := range file.Steps {
		class, err := domain.ParseAssetClass(className)
		if err != nil {
			return domain.Settings{}, err
		}
		for _, name := range names {
			kind, err := domain.ParseStepKind(name)
			if err != nil {
				return domain.Settings{}, zerr.With(err, "class", className)
			}
			if !slices.Contains(s.Steps[class], kind) {
				s.Steps[class] = append(s.Steps[class], kind)
			}
		}
	}

	return s, nil
}

// entryPoints orders entries by name so the assembled config is stable.
func entryPoints(entries map[string][]string) []domain.EntryPoint {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]domain.EntryPoint, 0, len(names))
	for _, name := range names {
		out = append(out, domain.EntryPoint{Name: name, Paths: slices.Clone(entries[name])})
	}
	return out
}
