package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wxpack/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wxpack/internal/adapters/envfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wxpack/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/wxpack/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wxpack/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/wxpack/internal/adapters/snapshot" //nolint:depguard // Wired in app layer
	"go.trai.ch/wxpack/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			envfile.NodeID,
			config.NodeID,
			fs.WalkerNodeID,
			fs.VerifierNodeID,
			snapshot.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := graft.Dep[ports.ProfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.SourceWalker](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.CopyVerifier](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, profiles, settings, walker, verifier, snapshots, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
