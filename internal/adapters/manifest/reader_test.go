package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/adapters/manifest"
	"go.trai.ch/wxpack/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ManifestFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantCopies   []domain.CopyDirective
		wantBrowsers []string
	}{
		{
			name:         "string pattern copies onto itself",
			content:      `{"copyWebpack": ["static/icon.png"]}`,
			wantCopies:   []domain.CopyDirective{{From: "static/icon.png", To: "static/icon.png"}},
			wantBrowsers: []string{},
		},
		{
			name:    "object patterns keep order",
			content: `{"copyWebpack": [{"from": "b", "to": "out/b"}, {"from": "a"}]}`,
			wantCopies: []domain.CopyDirective{
				{From: "b", To: "out/b"},
				{From: "a", To: "a"},
			},
			wantBrowsers: []string{},
		},
		{
			name:         "single value",
			content:      `{"copyWebpack": "assets"}`,
			wantCopies:   []domain.CopyDirective{{From: "assets", To: "assets"}},
			wantBrowsers: []string{},
		},
		{
			name:         "null and absent fields",
			content:      `{"name": "demo", "copyWebpack": null}`,
			wantCopies:   []domain.CopyDirective{},
			wantBrowsers: []string{},
		},
		{
			name:         "browsers are deduplicated",
			content:      `{"browsers": ["last 2 versions", "ios >= 8", "last 2 versions"]}`,
			wantCopies:   []domain.CopyDirective{},
			wantBrowsers: []string{"last 2 versions", "ios >= 8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.NewReader().Read(writeManifest(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCopies, m.CopyDirectives)
			assert.Equal(t, tt.wantBrowsers, m.TargetBrowsers)
		})
	}
}

func TestReader_Read_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), domain.ManifestFileName) },
			wantErr: domain.ErrManifestRead,
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeManifest(t, `{"copyWebpack": [`) },
			wantErr: domain.ErrManifestParse,
		},
		{
			name:    "object pattern without from",
			path:    func(t *testing.T) string { return writeManifest(t, `{"copyWebpack": [{"to": "x"}]}`) },
			wantErr: domain.ErrManifestParse,
		},
		{
			name:    "wrong browsers type",
			path:    func(t *testing.T) string { return writeManifest(t, `{"browsers": "ios"}`) },
			wantErr: domain.ErrManifestParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.NewReader().Read(tt.path(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
