package ports

import "go.trai.ch/wxpack/internal/core/domain"

// ProfileLoader loads the environment payload injected as a compile-time constant.
//
//go:generate go run go.uber.org/mock/mockgen -source=profile_loader.go -destination=mocks/mock_profile_loader.go -package=mocks
type ProfileLoader interface {
	// Load returns the key/value payload of the named profile.
	//
	// A missing payload for the default profile yields an empty map; for any other
	// name it yields domain.ErrMissingEnvironmentProfile.
	Load(layout domain.ProjectLayout, name string) (map[string]string, error)
}
