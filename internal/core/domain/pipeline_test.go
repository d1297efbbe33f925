package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/core/domain"
)

func sampleConfig() domain.PipelineConfig {
	return domain.PipelineConfig{
		Context: "/project",
		Mode:    "production",
		Rules: []domain.PipelineRule{
			{Class: domain.Script, Test: `\.js$`, Chain: domain.TransformChain{{Name: "babel-loader", Kind: domain.StepCompile}}},
			{Class: domain.Media, Test: `\.png$`, Chain: domain.TransformChain{{Name: "file-loader", Kind: domain.StepEmit}}},
		},
		Alias:     map[string]string{"@": "/project/src", "@style": "/project/src/styles/index.scss"},
		Constants: map[string]any{"__DEV__": false, "__ENV__": map[string]string{"A": "1", "B": "2"}},
		Watch:     domain.WatchSpec{Ignored: "dist|manifest", AggregateTimeout: 300},
	}
}

func TestPipelineConfig_Fingerprint(t *testing.T) {
	a, err := sampleConfig().Fingerprint()
	require.NoError(t, err)
	b, err := sampleConfig().Fingerprint()
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)

	changed := sampleConfig()
	changed.Mode = "development"
	c, err := changed.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestPipelineConfig_RuleFor(t *testing.T) {
	cfg := sampleConfig()

	r, ok := cfg.RuleFor(domain.Media)
	require.True(t, ok)
	assert.Equal(t, `\.png$`, r.Test)

	_, ok = cfg.RuleFor(domain.Style)
	assert.False(t, ok)
}

func TestNewManifest(t *testing.T) {
	copies := []domain.CopyDirective{{From: "a", To: "a"}}
	m := domain.NewManifest(copies, []string{"ios >= 8", "last 2 versions", "ios >= 8"})

	assert.Equal(t, []string{"ios >= 8", "last 2 versions"}, m.TargetBrowsers)

	copies[0].From = "mutated"
	assert.Equal(t, "a", m.CopyDirectives[0].From)

	b := m.Browsers()
	b[0] = "mutated"
	assert.Equal(t, "ios >= 8", m.TargetBrowsers[0])

	empty := domain.NewManifest(nil, nil)
	assert.NotNil(t, empty.CopyDirectives)
	assert.NotNil(t, empty.TargetBrowsers)
}

func TestBuildProfile(t *testing.T) {
	tests := []struct {
		name      string
		profile   domain.BuildProfile
		nodeEnv   string
		minifies  bool
		speedOpts bool
	}{
		{"dev", domain.BuildProfile{IsDevelopment: true, MinifyEnabled: true, SpeedOptimizationsEnabled: true}, "development", false, true},
		{"prod", domain.BuildProfile{MinifyEnabled: true, SpeedOptimizationsEnabled: true}, "production", true, false},
		{"plain prod", domain.BuildProfile{}, "production", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nodeEnv, tt.profile.NodeEnv())
			assert.Equal(t, tt.minifies, tt.profile.Minifies())
			assert.Equal(t, tt.speedOpts, tt.profile.SpeedOptimized())
		})
	}
}
