package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wxpack/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the source walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// VerifierNodeID is the unique identifier for the copy verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

// verifyLimit bounds concurrent stat calls during copy verification.
const verifyLimit = 8

func init() {
	graft.Register(graft.Node[ports.SourceWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.CopyVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CopyVerifier, error) {
			return NewVerifier(verifyLimit), nil
		},
	})
}
