package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// StepKind is the role a transform step plays inside a chain.
type StepKind string

const (
	// StepCompile transforms the asset into its target language.
	StepCompile StepKind = "compile"
	// StepProcess post-processes compiled output (e.g. vendor prefixing).
	StepProcess StepKind = "process"
	// StepEmit writes the asset to its relative location in the output tree.
	StepEmit StepKind = "emit"
	// StepLint checks already-compiled source.
	StepLint StepKind = "lint"
	// StepMinify compacts the output.
	StepMinify StepKind = "minify"
	// StepCache memoises the steps that follow it.
	StepCache StepKind = "cache"
	// StepParallel runs the steps that follow it in a worker pool.
	StepParallel StepKind = "parallel"
)

// ParseStepKind parses an augmentation step name as used in settings files.
func ParseStepKind(name string) (StepKind, error) {
	k := StepKind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case StepLint, StepMinify, StepCache, StepParallel:
		return k, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownStep, "cannot parse step"), "step", name)
	}
}

// TransformStep is one loader invocation with its options.
type TransformStep struct {
	Name    string         `yaml:"loader" json:"loader"`
	Kind    StepKind       `yaml:"kind" json:"kind"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// Clone returns a deep copy of the step.
func (s TransformStep) Clone() TransformStep {
	out := TransformStep{Name: s.Name, Kind: s.Kind}
	if s.Options != nil {
		out.Options = make(map[string]any, len(s.Options))
		for k, v := range s.Options {
			out.Options[k] = cloneOption(v)
		}
	}
	return out
}

func cloneOption(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case map[string]string:
		return maps.Clone(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneOption(inner)
		}
		return out
	default:
		return v
	}
}

// TransformChain is an ordered list of steps; the first step runs first.
type TransformChain []TransformStep

// Clone returns a deep copy of the chain.
func (c TransformChain) Clone() TransformChain {
	if c == nil {
		return nil
	}
	out := make(TransformChain, len(c))
	for i, s := range c {
		out[i] = s.Clone()
	}
	return out
}

// Names returns the loader names in execution order.
func (c TransformChain) Names() []string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name
	}
	return names
}

// Contains reports whether any step has the given kind.
func (c TransformChain) Contains(kind StepKind) bool {
	return slices.ContainsFunc(c, func(s TransformStep) bool { return s.Kind == kind })
}

// IndexOf returns the position of the first step of the given kind, or -1.
func (c TransformChain) IndexOf(kind StepKind) int {
	return slices.IndexFunc(c, func(s TransformStep) bool { return s.Kind == kind })
}

// Loaders returns the chain in the engine's right-to-left loader order.
func (c TransformChain) Loaders() []string {
	names := c.Names()
	slices.Reverse(names)
	return names
}
