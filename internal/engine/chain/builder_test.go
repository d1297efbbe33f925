package chain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/engine/chain"
	"go.trai.ch/wxpack/internal/engine/classifier"
)

var (
	dev     = domain.BuildProfile{IsDevelopment: true, ConfigName: "dev", SpeedOptimizationsEnabled: true}
	devLint = domain.BuildProfile{IsDevelopment: true, LintEnabled: true, ConfigName: "dev", SpeedOptimizationsEnabled: true}
	prod    = domain.BuildProfile{ConfigName: "prod"}
)

func newBuilder(t *testing.T, requests map[domain.AssetClass][]domain.StepKind) *chain.Builder {
	t.Helper()
	layout, err := domain.ResolveLayout("/project", false)
	require.NoError(t, err)
	b, err := chain.NewBuilder(classifier.DefaultRules(layout), requests, 2)
	require.NoError(t, err)
	return b
}

func build(t *testing.T, b *chain.Builder, class domain.AssetClass, p domain.BuildProfile) domain.TransformChain {
	t.Helper()
	c, err := b.Build(class, p, domain.NewManifest(nil, nil))
	require.NoError(t, err)
	return c
}

func TestBuild_Scenarios(t *testing.T) {
	b := newBuilder(t, nil)

	tests := []struct {
		name    string
		class   domain.AssetClass
		profile domain.BuildProfile
		want    []string
	}{
		{
			name:    "production typescript with lint",
			class:   domain.TypedScript,
			profile: domain.BuildProfile{LintEnabled: true, ConfigName: "prod"},
			want:    []string{"ts-loader", "tslint-loader"},
		},
		{
			name:    "production script with minify",
			class:   domain.Script,
			profile: domain.BuildProfile{MinifyEnabled: true},
			want:    []string{"babel-loader", "babel-minify-loader"},
		},
		{
			name:    "development never minifies",
			class:   domain.Script,
			profile: domain.BuildProfile{IsDevelopment: true, MinifyEnabled: true},
			want:    []string{"babel-loader"},
		},
		{
			name:    "development speed prefix",
			class:   domain.TypedScript,
			profile: dev,
			want:    []string{"cache-loader", "thread-loader", "ts-loader"},
		},
		{
			name:    "development speed with lint",
			class:   domain.Script,
			profile: devLint,
			want:    []string{"cache-loader", "thread-loader", "babel-loader", "eslint-loader"},
		},
		{
			name:    "style lint follows compile",
			class:   domain.Style,
			profile: devLint,
			want:    []string{"sass-loader", "stylelint-loader", "postcss-loader", "file-loader"},
		},
		{
			name:    "media is never augmented",
			class:   domain.Media,
			profile: devLint,
			want:    []string{"file-loader"},
		},
		{
			name:    "data is never augmented",
			class:   domain.DataAsset,
			profile: domain.BuildProfile{LintEnabled: true, MinifyEnabled: true},
			want:    []string{"file-loader"},
		},
		{
			name:    "passthrough is never augmented",
			class:   domain.Passthrough,
			profile: devLint,
			want:    []string{"file-loader"},
		},
		{
			name:    "markup has no default augmentation",
			class:   domain.MarkupTemplate,
			profile: devLint,
			want:    []string{"wxml-loader", "file-loader"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, build(t, b, tt.class, tt.profile).Names())
		})
	}
}

func TestBuild_Invariants(t *testing.T) {
	b := newBuilder(t, nil)
	profiles := []domain.BuildProfile{
		dev, devLint, prod,
		{MinifyEnabled: true, LintEnabled: true},
		{IsDevelopment: true, MinifyEnabled: true, LintEnabled: true},
	}

	for _, p := range profiles {
		for _, class := range domain.AllAssetClasses() {
			c := build(t, b, class, p)

			if p.IsDevelopment {
				assert.False(t, c.Contains(domain.StepMinify), "dev chain for %s minifies", class)
			}
			if !p.LintEnabled {
				assert.False(t, c.Contains(domain.StepLint), "lint present for %s without LINT", class)
			}
			if !p.SpeedOptimized() {
				assert.False(t, c.Contains(domain.StepCache), "cache present for %s", class)
				assert.False(t, c.Contains(domain.StepParallel), "parallel present for %s", class)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := newBuilder(t, nil)
	manifest := domain.NewManifest(nil, []string{"last 2 versions"})

	first, err := b.Build(domain.Style, devLint, manifest)
	require.NoError(t, err)
	second, err := b.Build(domain.Style, devLint, manifest)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"last 2 versions"}, first[first.IndexOf(domain.StepProcess)].Options["browsers"])
}

func TestBuild_CallerOwnsChain(t *testing.T) {
	b := newBuilder(t, nil)

	c := build(t, b, domain.TypedScript, dev)
	c[0].Name = "mutated"
	c[len(c)-1].Options["happyPackMode"] = false

	again := build(t, b, domain.TypedScript, dev)
	assert.Equal(t, "cache-loader", again[0].Name)
	assert.Equal(t, true, again[len(again)-1].Options["happyPackMode"])
}

func TestBuild_ParallelOptions(t *testing.T) {
	b := newBuilder(t, nil)

	c := build(t, b, domain.Script, dev)
	i := c.IndexOf(domain.StepParallel)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 2, c[i].Options["workers"])
	assert.Equal(t, []string{"babel-loader", "thread-loader", "cache-loader"}, c.Loaders())
}

func TestBuild_UnknownClass(t *testing.T) {
	b := newBuilder(t, nil)

	_, err := b.Build(domain.AssetClass(99), dev, domain.NewManifest(nil, nil))
	require.ErrorIs(t, err, domain.ErrUnknownAssetClass)
}

func TestNewBuilder_Requests(t *testing.T) {
	t.Run("extends defaults", func(t *testing.T) {
		b := newBuilder(t, map[domain.AssetClass][]domain.StepKind{
			domain.Style:          {domain.StepCache},
			domain.MarkupTemplate: {domain.StepCache},
		})

		assert.Equal(t, []string{"cache-loader", "sass-loader", "postcss-loader", "file-loader"},
			build(t, b, domain.Style, dev).Names())
		assert.Equal(t, []string{"cache-loader", "wxml-loader", "file-loader"},
			build(t, b, domain.MarkupTemplate, dev).Names())
	})

	unsupported := []struct {
		name  string
		class domain.AssetClass
		step  domain.StepKind
	}{
		{name: "minify on markup", class: domain.MarkupTemplate, step: domain.StepMinify},
		{name: "parallel on style", class: domain.Style, step: domain.StepParallel},
		{name: "lint on media", class: domain.Media, step: domain.StepLint},
		{name: "cache on passthrough", class: domain.Passthrough, step: domain.StepCache},
	}

	for _, tt := range unsupported {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := domain.ResolveLayout("/project", false)
			require.NoError(t, err)

			_, err = chain.NewBuilder(classifier.DefaultRules(layout),
				map[domain.AssetClass][]domain.StepKind{tt.class: {tt.step}}, 0)
			require.ErrorIs(t, err, domain.ErrUnsupportedClassForStep)
		})
	}
}

func TestDefaultWorkers(t *testing.T) {
	assert.Equal(t, 6, chain.DefaultWorkers(6))
	assert.GreaterOrEqual(t, chain.DefaultWorkers(0), 1)
	assert.GreaterOrEqual(t, chain.DefaultWorkers(-3), 1)
}

func TestParallelLoaders(t *testing.T) {
	b := newBuilder(t, nil)

	assert.Nil(t, b.ParallelLoaders(prod))
	assert.Equal(t, []string{"babel-loader", "ts-loader"}, b.ParallelLoaders(dev))
	assert.Equal(t, []string{"babel-loader", "eslint-loader", "ts-loader", "tslint-loader"}, b.ParallelLoaders(devLint))
}

func TestBuild_Concurrent(t *testing.T) {
	b := newBuilder(t, nil)
	want := build(t, b, domain.TypedScript, devLint)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			c, err := b.Build(domain.TypedScript, devLint, domain.NewManifest(nil, nil))
			assert.NoError(t, err)
			assert.Equal(t, want, c)
		})
	}
	wg.Wait()
}
