package fs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/adapters/fs"
	"go.trai.ch/wxpack/internal/core/domain"
)

func TestVerifier_VerifySources(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "static", "icon.png"))
	touch(t, filepath.Join(root, "fonts", "a.ttf"))

	present := domain.CopyDirective{From: filepath.Join(root, "static", "icon.png"), To: "static/icon.png"}
	globbed := domain.CopyDirective{From: filepath.Join(root, "fonts", "*.ttf"), To: "fonts"}
	dir := domain.CopyDirective{From: filepath.Join(root, "static"), To: "static"}
	gone := domain.CopyDirective{From: filepath.Join(root, "missing.txt"), To: "missing.txt"}
	noMatch := domain.CopyDirective{From: filepath.Join(root, "fonts", "*.woff"), To: "fonts"}

	tests := []struct {
		name  string
		limit int
	}{
		{name: "bounded", limit: 2},
		{name: "unbounded", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, err := fs.NewVerifier(tt.limit).VerifySources(
				context.Background(),
				[]domain.CopyDirective{gone, present, globbed, noMatch, dir},
			)
			require.NoError(t, err)
			assert.Equal(t, []domain.CopyDirective{gone, noMatch}, missing)
		})
	}
}

func TestVerifier_VerifySources_Empty(t *testing.T) {
	missing, err := fs.NewVerifier(4).VerifySources(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestVerifier_VerifySources_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewVerifier(1).VerifySources(ctx, []domain.CopyDirective{{From: "a", To: "a"}})
	require.ErrorIs(t, err, context.Canceled)
}
