// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/wxpack/internal/core/domain"

// ManifestReader loads the package manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path. A malformed manifest yields domain.ErrManifestParse.
	Read(path string) (domain.Manifest, error)
}
