// Package envfile loads environment profile payloads from dotenv files.
package envfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProfileLoader = (*Loader)(nil)

// Loader implements ports.ProfileLoader over `<config>/<name>.env` files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the payload for name from the layout's config directory.
func (l *Loader) Load(layout domain.ProjectLayout, name string) (map[string]string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingEnvironmentProfile, "invalid profile name"), "profile", name)
	}

	path := layout.EnvProfilePath(name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && name == domain.DefaultProfileName {
			return map[string]string{}, nil
		}
		err = zerr.With(zerr.Wrap(domain.ErrMissingEnvironmentProfile, "cannot load profile payload"), "profile", name)
		return nil, zerr.With(err, "path", path)
	}

	payload, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironmentProfileParse, err.Error()), "path", path)
	}
	return payload, nil
}
