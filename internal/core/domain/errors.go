package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidRoot is returned when the project root does not reference a directory.
	ErrInvalidRoot = zerr.New("project root is not a directory")

	// ErrFailedToGetRoot is returned when the project root path cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrManifestRead is returned when the package manifest cannot be read.
	ErrManifestRead = zerr.New("failed to read package manifest")

	// ErrManifestParse is returned when the package manifest is not well-formed.
	ErrManifestParse = zerr.New("failed to parse package manifest")

	// ErrUnsupportedClassForStep is returned when a step is requested for an asset class
	// that cannot carry it (e.g. minify on markup templates).
	ErrUnsupportedClassForStep = zerr.New("step is not supported for asset class")

	// ErrUnknownAssetClass is returned when an asset class name cannot be parsed.
	ErrUnknownAssetClass = zerr.New("unknown asset class")

	// ErrUnknownStep is returned when a step kind name cannot be parsed.
	ErrUnknownStep = zerr.New("unknown transform step")

	// ErrMissingEnvironmentProfile is returned when the env payload for a non-default
	// profile name does not exist.
	ErrMissingEnvironmentProfile = zerr.New("missing environment profile")

	// ErrEnvironmentProfileParse is returned when an env payload file is malformed.
	ErrEnvironmentProfileParse = zerr.New("failed to parse environment profile")

	// ErrSettingsRead is returned when the project settings file cannot be read.
	ErrSettingsRead = zerr.New("failed to read settings file")

	// ErrSettingsParse is returned when the project settings file cannot be parsed.
	ErrSettingsParse = zerr.New("failed to parse settings file")

	// ErrUnsupportedSettingsVersion is returned when the settings file declares a
	// schema version this build does not understand.
	ErrUnsupportedSettingsVersion = zerr.New("unsupported settings version")

	// ErrUnknownPlatform is returned when no packaging plugin exists for a platform.
	ErrUnknownPlatform = zerr.New("unknown target platform")

	// ErrCopySourceMissing is returned when a copy directive source does not exist.
	ErrCopySourceMissing = zerr.New("copy source not found")

	// ErrUnsupportedFormat is returned when the config output format is neither yaml nor json.
	ErrUnsupportedFormat = zerr.New("unsupported output format")
)
