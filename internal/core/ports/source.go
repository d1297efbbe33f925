package ports

import (
	"context"
	"iter"

	"go.trai.ch/wxpack/internal/core/domain"
)

// SourceWalker enumerates the files of a source tree.
type SourceWalker interface {
	// WalkFiles yields every file under root, skipping directories matching ignores.
	// A walk failure is yielded once with an empty path, ending the sequence.
	WalkFiles(root string, ignores []string) iter.Seq2[string, error]
}

// CopyVerifier checks copy directives against the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type CopyVerifier interface {
	// VerifySources returns the directives whose source path does not exist.
	VerifySources(ctx context.Context, directives []domain.CopyDirective) ([]domain.CopyDirective, error)
}
