package domain

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// EntryPoint is a named bundle entry.
type EntryPoint struct {
	Name  string   `yaml:"name" json:"name"`
	Paths []string `yaml:"paths" json:"paths"`
}

// OutputSpec describes where and how bundles are written.
type OutputSpec struct {
	Path       string `yaml:"path" json:"path"`
	Filename   string `yaml:"filename" json:"filename"`
	PublicPath string `yaml:"publicPath" json:"publicPath"`
}

// PipelineRule pairs a matcher with the chain applied to the assets it captures.
// Chain is listed in execution order.
type PipelineRule struct {
	Class   AssetClass     `yaml:"class" json:"class"`
	Test    string         `yaml:"test" json:"test"`
	Exclude []string       `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Enforce string         `yaml:"enforce,omitempty" json:"enforce,omitempty"`
	Chain   TransformChain `yaml:"chain" json:"chain"`
}

// CopySpec lists absolute copy directives forwarded to the engine.
type CopySpec struct {
	Context  string          `yaml:"context" json:"context"`
	Patterns []CopyDirective `yaml:"patterns" json:"patterns"`
}

// ResolveSpec configures module resolution.
type ResolveSpec struct {
	Modules    []string `yaml:"modules" json:"modules"`
	Extensions []string `yaml:"extensions" json:"extensions"`
}

// PackagingSpec is the platform packaging plugin that consumes the compiled tree.
type PackagingSpec struct {
	Platform string         `yaml:"platform" json:"platform"`
	Plugin   string         `yaml:"plugin" json:"plugin"`
	Options  map[string]any `yaml:"options" json:"options"`
}

// ParallelSpec instructs the engine to run compile steps in a worker pool and,
// optionally, to pre-spawn workers for the listed loaders.
type ParallelSpec struct {
	Workers int      `yaml:"workers" json:"workers"`
	Warmup  []string `yaml:"warmup,omitempty" json:"warmup,omitempty"`
}

// WatchSpec configures watch mode.
type WatchSpec struct {
	Ignored string `yaml:"ignored" json:"ignored"`
	// AggregateTimeout is in milliseconds, the unit the bundler reads.
	AggregateTimeout int `yaml:"aggregateTimeout" json:"aggregateTimeout"`
}

// PipelineConfig is the fully-resolved description handed to the bundler engine.
type PipelineConfig struct {
	Context   string            `yaml:"context" json:"context"`
	Mode      string            `yaml:"mode" json:"mode"`
	Entry     []EntryPoint      `yaml:"entry" json:"entry"`
	Output    OutputSpec        `yaml:"output" json:"output"`
	Rules     []PipelineRule    `yaml:"rules" json:"rules"`
	Copy      CopySpec          `yaml:"copy" json:"copy"`
	Alias     map[string]string `yaml:"alias" json:"alias"`
	Constants map[string]any    `yaml:"constants" json:"constants"`
	Resolve   ResolveSpec       `yaml:"resolve" json:"resolve"`
	Packaging PackagingSpec     `yaml:"packaging" json:"packaging"`
	Parallel  *ParallelSpec     `yaml:"parallel,omitempty" json:"parallel,omitempty"`
	Devtool   string            `yaml:"devtool,omitempty" json:"devtool,omitempty"`
	Ignore    []string          `yaml:"ignore,omitempty" json:"ignore,omitempty"`
	Watch     WatchSpec         `yaml:"watch" json:"watch"`
}

// RuleFor returns the rule for the given class.
func (c PipelineConfig) RuleFor(class AssetClass) (PipelineRule, bool) {
	for _, r := range c.Rules {
		if r.Class == class {
			return r, true
		}
	}
	return PipelineRule{}, false
}

// Fingerprint returns a stable hash of the configuration. Map keys are encoded in
// sorted order, so structurally identical configs share a fingerprint.
func (c PipelineConfig) Fingerprint() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode pipeline config")
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
