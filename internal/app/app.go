// Package app implements the application layer for wxpack.
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/core/ports"
	"go.trai.ch/wxpack/internal/engine/chain"
	"go.trai.ch/wxpack/internal/engine/classifier"
	"go.trai.ch/wxpack/internal/engine/profile"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests ports.ManifestReader
	profiles  ports.ProfileLoader
	settings  ports.SettingsLoader
	walker    ports.SourceWalker
	verifier  ports.CopyVerifier
	snapshots ports.SnapshotStore
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	manifests ports.ManifestReader,
	profiles ports.ProfileLoader,
	settings ports.SettingsLoader,
	walker ports.SourceWalker,
	verifier ports.CopyVerifier,
	snapshots ports.SnapshotStore,
	log ports.Logger,
) *App {
	return &App{
		manifests: manifests,
		profiles:  profiles,
		settings:  settings,
		walker:    walker,
		verifier:  verifier,
		snapshots: snapshots,
		logger:    log,
	}
}

// Request carries everything one invocation needs. Env is read once by the caller
// and never consulted again.
type Request struct {
	Root string
	// SettingsPath overrides the default wxpack.yaml location.
	SettingsPath string
	Env          map[string]string
	Flags        profile.Flags
}

var packagingPlugins = map[string]string{
	domain.PlatformWechat: "miniprogram-webpack-plugin",
	domain.PlatformAlipay: "mini-program-webpack-plugin",
}

const (
	watchIgnored   = "dist|manifest"
	watchAggregate = 300
	styleAliasPath = "styles/index.scss"
)

// Assemble resolves every input and produces the pipeline configuration.
//
//nolint:cyclop // orchestration function
func (a *App) Assemble(req Request) (domain.PipelineConfig, error) {
	layout, err := domain.ResolveLayout(req.Root, true)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	manifest, err := a.manifests.Read(layout.Manifest)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	prof := profile.Resolve(req.Env, req.Flags)

	settings, err := a.settings.Load(a.settingsPath(req, layout))
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	payload, err := a.profiles.Load(layout, prof.ConfigName)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	plugin, ok := packagingPlugins[settings.Platform]
	if !ok {
		return domain.PipelineConfig{}, zerr.With(zerr.Wrap(domain.ErrUnknownPlatform, "no packaging plugin"), "platform", settings.Platform)
	}

	cls := classifier.New(classifier.DefaultRules(layout))
	a.warnOverlaps(cls)

	builder, err := chain.NewBuilder(cls.Rules(), settings.Steps, settings.Workers)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	rules, err := pipelineRules(cls, builder, prof, manifest)
	if err != nil {
		return domain.PipelineConfig{}, err
	}

	cfg := domain.PipelineConfig{
		Context: layout.Root,
		Mode:    prof.NodeEnv(),
		Entry:   entryPoints(layout, settings.Entry),
		Output: domain.OutputSpec{
			Path:       layout.Output,
			Filename:   settings.Filename,
			PublicPath: settings.PublicPath,
		},
		Rules: rules,
		Copy: domain.CopySpec{
			Context:  layout.Source,
			Patterns: ExpandCopies(layout, manifest),
		},
		Alias:     Aliases(layout),
		Constants: profile.Constants(prof, payload),
		Resolve: domain.ResolveSpec{
			Modules:    []string{layout.Root, domain.DependencyDirName},
			Extensions: []string{".ts", ".js"},
		},
		Packaging: domain.PackagingSpec{
			Platform: settings.Platform,
			Plugin:   plugin,
			Options: map[string]any{
				"clear":    !prof.IsDevelopment,
				"basePath": layout.Source,
			},
		},
		Parallel: parallelSpec(builder, prof, settings, rules),
		Ignore:   []string{"vertx"},
		Watch: domain.WatchSpec{
			Ignored:          watchIgnored,
			AggregateTimeout: watchAggregate,
		},
	}
	if prof.IsDevelopment {
		cfg.Devtool = "source-map"
	}

	fp, err := cfg.Fingerprint()
	if err != nil {
		return domain.PipelineConfig{}, err
	}
	a.logger.Info(fmt.Sprintf("assembled %s pipeline for profile %q (%s)", cfg.Mode, prof.ConfigName, fp))

	return cfg, nil
}

func (a *App) settingsPath(req Request, layout domain.ProjectLayout) string {
	if req.SettingsPath == "" {
		return layout.SettingsPath()
	}
	if filepath.IsAbs(req.SettingsPath) {
		return req.SettingsPath
	}
	return filepath.Join(layout.Root, req.SettingsPath)
}

func (a *App) warnOverlaps(cls *classifier.Classifier) {
	for _, o := range cls.Overlaps() {
		shadowed := make([]string, len(o.Shadowed))
		for i, c := range o.Shadowed {
			shadowed[i] = c.String()
		}
		a.logger.Warn(fmt.Sprintf("extension %s is matched by the %s rule and shadowed %s rule(s); %s applies",
			o.Extension, o.Winner, strings.Join(shadowed, ", "), o.Winner))
	}
}

func pipelineRules(
	cls *classifier.Classifier,
	builder *chain.Builder,
	prof domain.BuildProfile,
	manifest domain.Manifest,
) ([]domain.PipelineRule, error) {
	rules := cls.Rules()
	out := make([]domain.PipelineRule, 0, len(rules))
	for _, r := range rules {
		c, err := builder.Build(r.Class, prof, manifest)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.PipelineRule{
			Class:   r.Class,
			Test:    r.Matcher.Test(),
			Exclude: r.Matcher.Exclude,
			Enforce: r.Enforce,
			Chain:   c,
		})
	}
	return out, nil
}

func parallelSpec(
	builder *chain.Builder,
	prof domain.BuildProfile,
	settings domain.Settings,
	rules []domain.PipelineRule,
) *domain.ParallelSpec {
	used := false
	for _, r := range rules {
		if r.Chain.Contains(domain.StepParallel) {
			used = true
			break
		}
	}
	if !used {
		return nil
	}

	spec := &domain.ParallelSpec{Workers: builder.Workers()}
	if settings.Warmup {
		spec.Warmup = builder.ParallelLoaders(prof)
	}
	return spec
}

func entryPoints(layout domain.ProjectLayout, entries []domain.EntryPoint) []domain.EntryPoint {
	out := make([]domain.EntryPoint, len(entries))
	for i, e := range entries {
		paths := make([]string, len(e.Paths))
		for j, p := range e.Paths {
			paths[j] = layout.SourcePath(p)
		}
		out[i] = domain.EntryPoint{Name: e.Name, Paths: paths}
	}
	return out
}

// ExpandCopies resolves manifest copy directives against the source root, keeping
// declaration order.
func ExpandCopies(layout domain.ProjectLayout, manifest domain.Manifest) []domain.CopyDirective {
	out := make([]domain.CopyDirective, len(manifest.CopyDirectives))
	for i, d := range manifest.CopyDirectives {
		out[i] = domain.CopyDirective{
			From: layout.SourcePath(d.From),
			To:   layout.SourcePath(d.To),
		}
	}
	return out
}

// Aliases returns the fixed module alias map.
func Aliases(layout domain.ProjectLayout) map[string]string {
	return map[string]string{
		"@":      layout.Source,
		"@style": layout.SourcePath(styleAliasPath),
	}
}
