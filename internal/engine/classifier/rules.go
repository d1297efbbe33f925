package classifier

import (
	"go.trai.ch/wxpack/internal/core/domain"
)

// Loader names used by the default rule table.
const (
	LoaderBabel   = "babel-loader"
	LoaderTS      = "ts-loader"
	LoaderSass    = "sass-loader"
	LoaderPostCSS = "postcss-loader"
	LoaderFile    = "file-loader"
	LoaderWXML    = "wxml-loader"
)

// DefaultRules returns the rule table for a mini-program project rooted at layout.
//
// Passthrough deliberately repeats ".wxss": platform-native stylesheets are captured
// by the style rule first, and the overlap is reported by Classifier.Overlaps.
func DefaultRules(layout domain.ProjectLayout) []domain.AssetClassRule {
	exclude := domain.DependencyDirName

	return []domain.AssetClassRule{
		{
			Class:   domain.Script,
			Matcher: domain.NewMatcher([]string{"js"}, exclude),
			BaseSteps: domain.TransformChain{
				{Name: LoaderBabel, Kind: domain.StepCompile},
			},
		},
		{
			Class:   domain.TypedScript,
			Matcher: domain.NewMatcher([]string{"ts", "tsx"}, exclude),
			Enforce: "pre",
			BaseSteps: domain.TransformChain{
				{Name: LoaderTS, Kind: domain.StepCompile},
			},
		},
		{
			Class:   domain.Style,
			Matcher: domain.NewMatcher([]string{"scss", "wxss"}, exclude),
			BaseSteps: domain.TransformChain{
				{Name: LoaderSass, Kind: domain.StepCompile},
				{Name: LoaderPostCSS, Kind: domain.StepProcess},
				relativeFile(layout, "wxss"),
			},
		},
		{
			Class:   domain.MarkupTemplate,
			Matcher: domain.NewMatcher([]string{"wxml", "html"}, exclude),
			BaseSteps: domain.TransformChain{
				{Name: LoaderWXML, Kind: domain.StepCompile, Options: map[string]any{
					"root":                layout.Source,
					"enforceRelativePath": true,
				}},
				relativeFile(layout, "wxml"),
			},
		},
		{
			Class:   domain.DataAsset,
			Matcher: domain.NewMatcher([]string{"json", "wxs"}, exclude),
			BaseSteps: domain.TransformChain{
				relativeFile(layout, "[ext]"),
			},
		},
		{
			Class:   domain.Media,
			Matcher: domain.NewMatcher([]string{"png", "jpg", "jpeg", "gif", "svg"}, exclude),
			BaseSteps: domain.TransformChain{
				relativeFile(layout, "[ext]"),
			},
		},
		{
			Class:   domain.Passthrough,
			Matcher: domain.NewMatcher([]string{"wxss", "ttf", "woff", "woff2", "mp3", "mp4"}, exclude),
			BaseSteps: domain.TransformChain{
				relativeFile(layout, "[ext]"),
			},
		},
	}
}

// relativeFile emits the asset next to its source-relative location with ext.
func relativeFile(layout domain.ProjectLayout, ext string) domain.TransformStep {
	return domain.TransformStep{
		Name: LoaderFile,
		Kind: domain.StepEmit,
		Options: map[string]any{
			"useRelativePath": true,
			"name":            "[name]." + ext,
			"context":         layout.Source,
		},
	}
}
