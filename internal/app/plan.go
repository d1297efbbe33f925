package app

import (
	"context"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/engine/classifier"
	"go.trai.ch/zerr"
)

// PlannedAsset is the classification of one file under the source root.
type PlannedAsset struct {
	Path string
	// Matched is false for files no rule captures; they are copied through as-is.
	Matched bool
	Class   domain.AssetClass
	// Shadowed lists classes whose rule also accepts the file but loses to Class.
	Shadowed []domain.AssetClass
}

var planIgnores = []string{domain.DependencyDirName, domain.OutputDirName}

// Plan classifies every file under the source root.
func (a *App) Plan(ctx context.Context, req Request) ([]PlannedAsset, error) {
	layout, err := domain.ResolveLayout(req.Root, true)
	if err != nil {
		return nil, err
	}

	cls := classifier.New(classifier.DefaultRules(layout))

	var out []PlannedAsset
	for path, err := range a.walker.WalkFiles(layout.Source, planIgnores) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "plan canceled")
		}

		rel := classifier.Relative(layout.Source, path)
		matches := cls.MatchAll(rel)
		asset := PlannedAsset{Path: rel}
		if len(matches) > 0 {
			asset.Matched = true
			asset.Class = matches[0].Class
			for _, m := range matches[1:] {
				asset.Shadowed = append(asset.Shadowed, m.Class)
			}
		}
		out = append(out, asset)
	}
	return out, nil
}

// Check verifies that every copy directive in the manifest names an existing source.
// Missing sources are returned alongside domain.ErrCopySourceMissing.
func (a *App) Check(ctx context.Context, req Request) ([]domain.CopyDirective, error) {
	layout, err := domain.ResolveLayout(req.Root, true)
	if err != nil {
		return nil, err
	}

	manifest, err := a.manifests.Read(layout.Manifest)
	if err != nil {
		return nil, err
	}

	missing, err := a.verifier.VerifySources(ctx, ExpandCopies(layout, manifest))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to verify copy sources")
	}
	if len(missing) > 0 {
		froms := make([]string, len(missing))
		for i, m := range missing {
			froms[i] = m.From
		}
		err := zerr.With(zerr.Wrap(domain.ErrCopySourceMissing, "copy sources missing"), "count", len(missing))
		return missing, zerr.With(err, "from", froms)
	}

	a.logger.Info("all copy sources present")
	return nil, nil
}
