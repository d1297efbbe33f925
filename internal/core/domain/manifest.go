package domain

// CopyDirective copies From to To. Paths are relative to the source root until the
// assembler expands them.
type CopyDirective struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Manifest is the subset of the package manifest the pipeline consumes.
// CopyDirectives keeps declaration order: on overlapping destinations the
// last-declared directive wins.
type Manifest struct {
	CopyDirectives []CopyDirective
	TargetBrowsers []string
}

// NewManifest builds a Manifest, normalising absent fields to empty slices and
// dropping duplicate browser entries while keeping their first position.
func NewManifest(copies []CopyDirective, browsers []string) Manifest {
	m := Manifest{
		CopyDirectives: make([]CopyDirective, len(copies)),
		TargetBrowsers: make([]string, 0, len(browsers)),
	}
	copy(m.CopyDirectives, copies)

	seen := make(map[string]struct{}, len(browsers))
	for _, b := range browsers {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		m.TargetBrowsers = append(m.TargetBrowsers, b)
	}
	return m
}

// Browsers returns a copy of the target browser list.
func (m Manifest) Browsers() []string {
	out := make([]string, len(m.TargetBrowsers))
	copy(out, m.TargetBrowsers)
	return out
}
