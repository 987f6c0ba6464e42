package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// LayoutPolicy is a named directory-layout convention the recipe delegates to.
// The policy owns all directory side effects; the descriptor only names it.
//
//go:generate go run go.uber.org/mock/mockgen -source=layout.go -destination=mocks/mock_layout.go -package=mocks
type LayoutPolicy interface {
	// Name returns the policy name as referenced by recipes (e.g., "cmake").
	Name() string

	// Apply materializes the layout for the given build context and returns the
	// resolved folder set. Apply is idempotent: equivalent contexts produce
	// equivalent layouts and on-disk state. Failures are reported wrapped in
	// domain.ErrLayoutDelegationFailed and must not be retried here.
	Apply(ctx context.Context, bctx *domain.BuildContext) (domain.Layout, error)
}

// LayoutRegistry resolves a layout policy by name.
type LayoutRegistry interface {
	// Policy returns the policy registered under the given name.
	// Returns domain.ErrUnknownLayoutPolicy if no such policy exists.
	Policy(name string) (LayoutPolicy, error)
}
