package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// SourceDirName is the directory holding the mini-program sources.
	SourceDirName = "src"

	// OutputDirName is the directory the bundle is emitted into.
	OutputDirName = "dist"

	// DependencyDirName is the package dependency directory.
	DependencyDirName = "node_modules"

	// ManifestFileName is the name of the package manifest.
	ManifestFileName = "package.json"

	// ConfigDirName is the directory holding `<profile>.env` payloads.
	ConfigDirName = "config"

	// SettingsFileName is the name of the optional project settings file.
	SettingsFileName = "wxpack.yaml"

	// DefaultProfileName is the profile used when none is selected.
	DefaultProfileName = "dev"

	// EnvFileExt is the extension of environment profile payloads.
	EnvFileExt = ".env"

	// StateDirName is the directory holding written pipeline configs and their snapshots.
	StateDirName = ".wxpack"
)

// ProjectLayout holds the well-known absolute locations of a project.
// It is computed once per build and never mutated.
type ProjectLayout struct {
	Root         string
	Source       string
	Output       string
	Dependencies string
	Manifest     string
	ConfigDir    string
}

// ResolveLayout computes the project layout relative to root.
// Relative roots are resolved against the working directory. When validate is set
// the root must exist and be a directory.
func ResolveLayout(root string, validate bool) (ProjectLayout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return ProjectLayout{}, zerr.With(zerr.Wrap(ErrFailedToGetRoot, err.Error()), "root", root)
	}

	if validate {
		info, statErr := os.Stat(abs)
		if statErr != nil || !info.IsDir() {
			return ProjectLayout{}, zerr.With(zerr.Wrap(ErrInvalidRoot, "cannot use project root"), "root", abs)
		}
	}

	return ProjectLayout{
		Root:         abs,
		Source:       filepath.Join(abs, SourceDirName),
		Output:       filepath.Join(abs, OutputDirName),
		Dependencies: filepath.Join(abs, DependencyDirName),
		Manifest:     filepath.Join(abs, ManifestFileName),
		ConfigDir:    filepath.Join(abs, ConfigDirName),
	}, nil
}

// SourcePath returns rel joined onto the source root. Absolute paths are returned cleaned.
func (l ProjectLayout) SourcePath(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(l.Source, rel)
}

// SettingsPath returns the default location of the project settings file.
func (l ProjectLayout) SettingsPath() string {
	return filepath.Join(l.Root, SettingsFileName)
}

// StateDir returns the directory written pipeline configs live in.
func (l ProjectLayout) StateDir() string {
	return filepath.Join(l.Root, StateDirName)
}

// EnvProfilePath returns the location of the env payload for the named profile.
func (l ProjectLayout) EnvProfilePath(name string) string {
	return filepath.Join(l.ConfigDir, name+EnvFileExt)
}
