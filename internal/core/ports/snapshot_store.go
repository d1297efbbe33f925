package ports

import "go.trai.ch/wxpack/internal/core/domain"

// SnapshotStore remembers which pipeline config was last written per profile.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type SnapshotStore interface {
	// Get returns the snapshot for profile, or nil if none has been recorded.
	Get(layout domain.ProjectLayout, profile string) (*domain.Snapshot, error)
	// Put records snap, replacing any previous snapshot for the same profile.
	Put(layout domain.ProjectLayout, snap domain.Snapshot) error
}
