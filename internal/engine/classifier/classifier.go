// Package classifier maps source paths to asset classes.
package classifier

import (
	"path/filepath"
	"slices"

	"go.trai.ch/wxpack/internal/core/domain"
)

// Overlap records an extension accepted by more than one rule.
// Winner is the class that captures it; Shadowed lists the classes that never will.
type Overlap struct {
	Extension string
	Winner    domain.AssetClass
	Shadowed  []domain.AssetClass
}

// Classifier evaluates an ordered rule list, first match wins.
type Classifier struct {
	rules []domain.AssetClassRule
}

// New creates a Classifier over rules. The slice is copied; order is preserved.
func New(rules []domain.AssetClassRule) *Classifier {
	return &Classifier{rules: slices.Clone(rules)}
}

// Rules returns the rules in evaluation order.
func (c *Classifier) Rules() []domain.AssetClassRule {
	return slices.Clone(c.rules)
}

// Classify returns the first rule accepting path. Paths are relative to the source
// root. The boolean is false when no rule matches and the file is passed through.
func (c *Classifier) Classify(path string) (domain.AssetClassRule, bool) {
	for _, r := range c.rules {
		if r.Matcher.Accepts(path) {
			return r, true
		}
	}
	return domain.AssetClassRule{}, false
}

// MatchAll returns every rule accepting path, in evaluation order.
func (c *Classifier) MatchAll(path string) []domain.AssetClassRule {
	var out []domain.AssetClassRule
	for _, r := range c.rules {
		if r.Matcher.Accepts(path) {
			out = append(out, r)
		}
	}
	return out
}

// Overlaps reports every extension claimed by two or more rules, ordered by the
// position of the winning rule and then by extension declaration order.
func (c *Classifier) Overlaps() []Overlap {
	var out []Overlap
	seen := make(map[string]struct{})

	for i, r := range c.rules {
		for _, ext := range r.Matcher.Extensions {
			if _, ok := seen[ext]; ok {
				continue
			}
			seen[ext] = struct{}{}

			var shadowed []domain.AssetClass
			for _, later := range c.rules[i+1:] {
				if later.Matcher.AcceptsExtension(ext) {
					shadowed = append(shadowed, later.Class)
				}
			}
			if len(shadowed) > 0 {
				out = append(out, Overlap{Extension: ext, Winner: r.Class, Shadowed: shadowed})
			}
		}
	}
	return out
}

// Relative converts an absolute path under sourceRoot into the form Classify expects.
func Relative(sourceRoot, path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(sourceRoot, path)
	if err != nil {
		return path
	}
	return rel
}
