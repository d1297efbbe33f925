package domain

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// AssetClass is a category of source file sharing one transform chain.
type AssetClass uint8

const (
	// Script is plain JavaScript.
	Script AssetClass = iota + 1
	// TypedScript is TypeScript.
	TypedScript
	// Style is a stylesheet compiled to the platform style format.
	Style
	// Media is an image or other binary asset.
	Media
	// DataAsset is structured data or platform script modules copied beside their page.
	DataAsset
	// MarkupTemplate is a page template.
	MarkupTemplate
	// Passthrough is any asset relocated without processing.
	Passthrough
)

var assetClassNames = map[AssetClass]string{
	Script:         "script",
	TypedScript:    "typescript",
	Style:          "style",
	Media:          "media",
	DataAsset:      "data",
	MarkupTemplate: "markup",
	Passthrough:    "passthrough",
}

// AllAssetClasses lists every asset class in declaration order.
func AllAssetClasses() []AssetClass {
	return []AssetClass{Script, TypedScript, Style, Media, DataAsset, MarkupTemplate, Passthrough}
}

// ParseAssetClass parses the textual name of an asset class.
func ParseAssetClass(name string) (AssetClass, error) {
	for c, n := range assetClassNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownAssetClass, "cannot parse asset class"), "class", name)
}

func (c AssetClass) String() string {
	if n, ok := assetClassNames[c]; ok {
		return n
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (c AssetClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *AssetClass) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Supports reports whether an augmentation step of the given kind may be added to
// chains of this class. Base steps are always allowed.
func (c AssetClass) Supports(kind StepKind) bool {
	switch c {
	case Script, TypedScript:
		return kind == StepLint || kind == StepCache || kind == StepParallel || kind == StepMinify
	case Style:
		return kind == StepLint || kind == StepCache
	case MarkupTemplate:
		return kind == StepCache
	default:
		return false
	}
}

// DefaultSteps returns the augmentation steps the class receives without an explicit
// request. Each is still subject to the profile toggles.
func (c AssetClass) DefaultSteps() []StepKind {
	switch c {
	case Script, TypedScript:
		return []StepKind{StepLint, StepCache, StepParallel, StepMinify}
	case Style:
		return []StepKind{StepLint}
	default:
		return nil
	}
}

// Matcher accepts paths by extension, rejecting any path that passes through an
// excluded directory segment.
type Matcher struct {
	Extensions []string
	Exclude    []string
}

// NewMatcher builds a Matcher from extensions given with or without a leading dot.
func NewMatcher(extensions []string, exclude ...string) Matcher {
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !slices.Contains(exts, e) {
			exts = append(exts, e)
		}
	}
	return Matcher{Extensions: exts, Exclude: slices.Clone(exclude)}
}

// Accepts reports whether path is captured by the matcher.
func (m Matcher) Accepts(path string) bool {
	if !m.AcceptsExtension(filepath.Ext(path)) {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if slices.Contains(m.Exclude, seg) {
			return false
		}
	}
	return true
}

// AcceptsExtension reports whether ext (with leading dot) is in the extension set.
func (m Matcher) AcceptsExtension(ext string) bool {
	return slices.Contains(m.Extensions, strings.ToLower(ext))
}

// Test renders the matcher as the regular expression the bundler engine understands.
func (m Matcher) Test() string {
	parts := make([]string, len(m.Extensions))
	for i, e := range m.Extensions {
		parts[i] = regexp.QuoteMeta(strings.TrimPrefix(e, "."))
	}
	if len(parts) == 1 {
		return `\.` + parts[0] + `$`
	}
	return `\.(` + strings.Join(parts, "|") + `)$`
}

// AssetClassRule binds a matcher to an asset class and its fixed base steps.
// Rule lists are evaluated in declaration order and must not be reordered.
type AssetClassRule struct {
	Class     AssetClass
	Matcher   Matcher
	BaseSteps TransformChain
	// Enforce is the engine's loader phase ("pre", "post" or empty).
	Enforce string
}
