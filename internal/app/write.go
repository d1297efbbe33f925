package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/engine/profile"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ValidateFormat fails with domain.ErrUnsupportedFormat for anything but yaml or json.
func ValidateFormat(format string) error {
	if format != FormatYAML && format != FormatJSON {
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot encode pipeline config"), "format", format)
	}
	return nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg domain.PipelineConfig, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}

	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return zerr.Wrap(err, "failed to encode pipeline config")
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, "failed to encode pipeline config")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush pipeline config")
	}
	return nil
}

// WriteResult describes the outcome of Write.
type WriteResult struct {
	Path        string
	Fingerprint string
	// Unchanged is set when the file on disk already holds this configuration.
	Unchanged bool
}

// Write assembles the pipeline config and stores it under the project state
// directory. An unchanged config is not rewritten, so watchers on the file stay quiet.
func (a *App) Write(req Request, format string) (WriteResult, error) {
	if err := ValidateFormat(format); err != nil {
		return WriteResult{}, err
	}

	cfg, err := a.Assemble(req)
	if err != nil {
		return WriteResult{}, err
	}

	fp, err := cfg.Fingerprint()
	if err != nil {
		return WriteResult{}, err
	}

	// Assemble already validated the root.
	layout, err := domain.ResolveLayout(req.Root, false)
	if err != nil {
		return WriteResult{}, err
	}
	name := profile.Resolve(req.Env, req.Flags).ConfigName
	target := filepath.Join(layout.StateDir(), "pipeline."+name+"."+format)
	result := WriteResult{Path: target, Fingerprint: fp}

	prev, err := a.snapshots.Get(layout, name)
	if err != nil {
		return WriteResult{}, zerr.Wrap(err, "failed to read snapshot")
	}
	if prev != nil && prev.Fingerprint == fp && prev.Path == target && fileExists(target) {
		result.Unchanged = true
		a.logger.Info("pipeline config unchanged: " + target)
		return result, nil
	}

	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return WriteResult{}, err
	}
	if err := os.MkdirAll(layout.StateDir(), 0o750); err != nil {
		return WriteResult{}, zerr.Wrap(err, "failed to create state directory")
	}
	//nolint:gosec // Path is derived from the project root
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return WriteResult{}, zerr.With(zerr.Wrap(err, "failed to write pipeline config"), "path", target)
	}

	snap := domain.Snapshot{Profile: name, Fingerprint: fp, Path: target, Timestamp: time.Now()}
	if err := a.snapshots.Put(layout, snap); err != nil {
		return WriteResult{}, zerr.Wrap(err, "failed to record snapshot")
	}

	a.logger.Info("wrote pipeline config to " + target)
	return result, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
