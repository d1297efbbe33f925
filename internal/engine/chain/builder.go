// Package chain composes the ordered transform chain for an asset class.
package chain

import (
	"runtime"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader names of the augmentation steps.
const (
	LoaderCache     = "cache-loader"
	LoaderThread    = "thread-loader"
	LoaderMinify    = "babel-minify-loader"
	LoaderESLint    = "eslint-loader"
	LoaderTSLint    = "tslint-loader"
	LoaderStylelint = "stylelint-loader"
)

const cacheSize = 64

type cacheKey struct {
	class    domain.AssetClass
	profile  domain.BuildProfile
	browsers string
}

// Builder produces transform chains. It is safe for concurrent use.
type Builder struct {
	rules    map[domain.AssetClass]domain.AssetClassRule
	enabled  map[domain.AssetClass][]domain.StepKind
	workers  int
	memoized *lru.Cache[cacheKey, domain.TransformChain]
}

// NewBuilder creates a Builder over rules.
//
// requests adds augmentation steps to a class on top of its defaults; a request the
// class cannot carry fails with domain.ErrUnsupportedClassForStep. workers sets the
// worker-pool size, with values below one meaning host CPU count minus one.
func NewBuilder(
	rules []domain.AssetClassRule,
	requests map[domain.AssetClass][]domain.StepKind,
	workers int,
) (*Builder, error) {
	b := &Builder{
		rules:   make(map[domain.AssetClass]domain.AssetClassRule, len(rules)),
		enabled: make(map[domain.AssetClass][]domain.StepKind, len(rules)),
		workers: DefaultWorkers(workers),
	}

	for _, r := range rules {
		if _, dup := b.rules[r.Class]; dup {
			continue
		}
		b.rules[r.Class] = r
		b.enabled[r.Class] = r.Class.DefaultSteps()
	}

	for _, class := range domain.AllAssetClasses() {
		for _, kind := range requests[class] {
			if !class.Supports(kind) {
				err := zerr.With(zerr.Wrap(domain.ErrUnsupportedClassForStep, "invalid step request"), "class", class.String())
				return nil, zerr.With(err, "step", string(kind))
			}
			if !slices.Contains(b.enabled[class], kind) {
				b.enabled[class] = append(b.enabled[class], kind)
			}
		}
	}

	cache, err := lru.New[cacheKey, domain.TransformChain](cacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create chain cache")
	}
	b.memoized = cache

	return b, nil
}

// DefaultWorkers returns n when positive, otherwise host CPU count minus one, never
// less than one.
func DefaultWorkers(n int) int {
	if n > 0 {
		return n
	}
	return max(runtime.NumCPU()-1, 1)
}

// Workers returns the worker-pool size emitted in parallel steps.
func (b *Builder) Workers() int {
	return b.workers
}

// Build returns the chain for class under profile. The returned chain is owned by
// the caller.
func (b *Builder) Build(class domain.AssetClass, profile domain.BuildProfile, manifest domain.Manifest) (domain.TransformChain, error) {
	rule, ok := b.rules[class]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownAssetClass, "no rule for asset class"), "class", class.String())
	}

	key := cacheKey{class: class, profile: profile, browsers: strings.Join(manifest.TargetBrowsers, "\x00")}
	if cached, hit := b.memoized.Get(key); hit {
		return cached.Clone(), nil
	}

	chain := b.compose(rule, profile, manifest)
	b.memoized.Add(key, chain)
	return chain.Clone(), nil
}

func (b *Builder) compose(rule domain.AssetClassRule, profile domain.BuildProfile, manifest domain.Manifest) domain.TransformChain {
	chain := rule.BaseSteps.Clone()
	on := func(kind domain.StepKind) bool {
		return slices.Contains(b.enabled[rule.Class], kind)
	}

	for i := range chain {
		if chain[i].Kind == domain.StepProcess && len(manifest.TargetBrowsers) > 0 {
			if chain[i].Options == nil {
				chain[i].Options = map[string]any{}
			}
			chain[i].Options["browsers"] = manifest.Browsers()
		}
	}

	// Lint reads resolved source, so it runs right after the compile step.
	if profile.LintEnabled && on(domain.StepLint) {
		at := chain.IndexOf(domain.StepCompile) + 1
		chain = slices.Insert(chain, at, domain.TransformStep{Name: lintLoader(rule.Class), Kind: domain.StepLint})
	}

	if profile.SpeedOptimized() {
		var wrap domain.TransformChain
		if on(domain.StepCache) {
			wrap = append(wrap, domain.TransformStep{Name: LoaderCache, Kind: domain.StepCache})
		}
		if on(domain.StepParallel) {
			wrap = append(wrap, domain.TransformStep{
				Name:    LoaderThread,
				Kind:    domain.StepParallel,
				Options: map[string]any{"workers": b.workers},
			})
			if rule.Class == domain.TypedScript {
				markHappyPack(chain)
			}
		}
		chain = append(wrap, chain...)
	}

	if profile.Minifies() && on(domain.StepMinify) {
		chain = append(chain, domain.TransformStep{Name: LoaderMinify, Kind: domain.StepMinify})
	}

	return chain
}

// markHappyPack switches ts-loader into worker mode, which it needs once it no
// longer runs on the main thread.
func markHappyPack(chain domain.TransformChain) {
	i := chain.IndexOf(domain.StepCompile)
	if i < 0 {
		return
	}
	if chain[i].Options == nil {
		chain[i].Options = map[string]any{}
	}
	chain[i].Options["happyPackMode"] = true
}

func lintLoader(class domain.AssetClass) string {
	switch class {
	case domain.TypedScript:
		return LoaderTSLint
	case domain.Style:
		return LoaderStylelint
	default:
		return LoaderESLint
	}
}

// ParallelLoaders returns the compile loaders that run inside the worker pool under
// profile, in asset class order. These are the loaders worth warming up.
func (b *Builder) ParallelLoaders(profile domain.BuildProfile) []string {
	if !profile.SpeedOptimized() {
		return nil
	}
	var out []string
	for _, class := range domain.AllAssetClasses() {
		r, ok := b.rules[class]
		if !ok || !slices.Contains(b.enabled[class], domain.StepParallel) {
			continue
		}
		for _, s := range r.BaseSteps {
			if s.Kind == domain.StepCompile && !slices.Contains(out, s.Name) {
				out = append(out, s.Name)
			}
		}
		if profile.LintEnabled && slices.Contains(b.enabled[r.Class], domain.StepLint) {
			if l := lintLoader(r.Class); !slices.Contains(out, l) {
				out = append(out, l)
			}
		}
	}
	return out
}
