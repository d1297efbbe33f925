// Package manifest reads the package manifest of a mini-program project.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader for package.json files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// packageJSON is the subset of package.json the pipeline consumes.
type packageJSON struct {
	CopyWebpack copyList `json:"copyWebpack"`
	Browsers    []string `json:"browsers"`
}

// copyList accepts a single pattern as well as an array of patterns.
type copyList []copyPattern

// UnmarshalJSON implements json.Unmarshaler.
func (l *copyList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case bytes.HasPrefix(data, []byte("[")):
		var items []copyPattern
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		var single copyPattern
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*l = copyList{single}
		return nil
	}
}

// copyPattern is either a plain path, copied onto itself, or a {from, to} pair.
type copyPattern struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// UnmarshalJSON accepts both pattern forms.
func (p *copyPattern) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var path string
		if err := json.Unmarshal(data, &path); err != nil {
			return err
		}
		p.From, p.To = path, path
		return nil
	}

	type pair copyPattern
	var v pair
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.From == "" {
		return zerr.New("copy pattern is missing \"from\"")
	}
	if v.To == "" {
		v.To = v.From
	}
	*p = copyPattern(v)
	return nil
}

// Read parses the manifest at path.
func (r *Reader) Read(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(domain.ErrManifestRead, err.Error()), "path", path)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(domain.ErrManifestParse, err.Error()), "path", path)
	}

	copies := make([]domain.CopyDirective, len(pkg.CopyWebpack))
	for i, p := range pkg.CopyWebpack {
		copies[i] = domain.CopyDirective{From: p.From, To: p.To}
	}

	return domain.NewManifest(copies, pkg.Browsers), nil
}
