package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/app"
	"go.trai.ch/wxpack/internal/core/domain"
	_ "go.trai.ch/wxpack/internal/wiring"
)

// TestGraftGraph resolves the full node graph and drives the resulting App against
// a real project tree, so every adapter node is constructed and exercised.
func TestGraftGraph(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)

	root := t.TempDir()
	src := filepath.Join(root, domain.SourceDirName)
	require.NoError(t, os.MkdirAll(src, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ManifestFileName), []byte(`{"name":"demo"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "app.ts"), []byte("export {}"), 0o600))

	assets, err := components.App.Plan(context.Background(), app.Request{Root: root})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, domain.TypedScript, assets[0].Class)

	cfg, err := components.App.Assemble(app.Request{Root: root, Env: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, 300, cfg.Watch.AggregateTimeout)
}
