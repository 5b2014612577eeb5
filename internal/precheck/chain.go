package precheck

import (
	"context"

	"idea-gatekeeper/internal/gatekeeper"
)

type precheckChain struct {
	primary  Prechecker
	fallback Prechecker
}

// WithFallback returns a prechecker that first tries the primary
// implementation and falls back to the provided one when the primary is
// unavailable or produces an unusable response.
func WithFallback(primary, fallback Prechecker) Prechecker {
	if primary == nil {
		return fallback
	}
	if fallback == nil {
		return primary
	}
	return &precheckChain{primary: primary, fallback: fallback}
}

func (c *precheckChain) Enabled() bool {
	if c == nil {
		return false
	}
	if c.primary != nil && c.primary.Enabled() {
		return true
	}
	return c.fallback != nil && c.fallback.Enabled()
}

func (c *precheckChain) Check(ctx context.Context, input gatekeeper.Input) (Response, error) {
	if c == nil {
		return Response{}, ErrDisabled
	}
	if c.primary != nil && c.primary.Enabled() {
		if resp, err := c.primary.Check(ctx, input); err == nil {
			return resp, nil
		}
	}
	if c.fallback != nil && c.fallback.Enabled() {
		return c.fallback.Check(ctx, input)
	}
	return Response{}, ErrDisabled
}
