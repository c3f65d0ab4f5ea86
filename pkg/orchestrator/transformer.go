package orchestrator

import (
	"context"

	"github.com/goliatone/go-wayfinding/pkg/signs"
)

// Transformer rewrites a resolved sign before the duplicate check and the
// fill. Implementations can normalise text or remap direction codes.
type Transformer interface {
	Transform(ctx context.Context, sign *signs.Sign) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, sign *signs.Sign) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, sign *signs.Sign) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, sign)
}

// StripMarkupTransformer removes HTML markup from the sign ID and trail name.
func StripMarkupTransformer() Transformer {
	return TransformerFunc(func(_ context.Context, sign *signs.Sign) error {
		*sign = sign.PlainText()
		return nil
	})
}
