package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.CopyVerifier = (*Verifier)(nil)

// Verifier checks that copy directive sources exist.
type Verifier struct {
	limit int
}

// NewVerifier creates a Verifier running at most limit checks at once.
// Values below one mean unbounded.
func NewVerifier(limit int) *Verifier {
	return &Verifier{limit: limit}
}

// VerifySources returns the directives whose source path matches nothing, in input order.
// Sources containing glob metacharacters are expanded with filepath.Glob.
func (v *Verifier) VerifySources(ctx context.Context, directives []domain.CopyDirective) ([]domain.CopyDirective, error) {
	// Each goroutine owns one slot.
	missing := make([]bool, len(directives))

	g, ctx := errgroup.WithContext(ctx)
	if v.limit > 0 {
		g.SetLimit(v.limit)
	}

	for i, d := range directives {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := exists(d.From)
			if err != nil {
				return err
			}
			missing[i] = !ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.CopyDirective
	for i, d := range directives {
		if missing[i] {
			out = append(out, d)
		}
	}
	return out, nil
}

func exists(path string) (bool, error) {
	if strings.ContainsAny(path, "*?[") {
		matches, err := filepath.Glob(path)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		return len(matches) > 0, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return true, nil
}
