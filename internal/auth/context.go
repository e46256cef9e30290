package auth

import (
	"context"

	"github.com/spatialtx/datastore/internal/errors"
)

type key int

var principalKey key

// NewContext returns a context carrying the principal resolved for the
// current operation.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal carried by ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// CurrentPrincipal returns the principal the transport layer resolved for the
// current operation. It fails when no valid principal was attached, which
// means the caller skipped authentication upstream.
func CurrentPrincipal(ctx context.Context) (Principal, error) {
	const op = "auth.CurrentPrincipal"
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, errors.New(errors.Forbidden, op, "no principal attached to context")
	}
	if !p.Valid() {
		return Principal{}, errors.New(errors.Forbidden, op, "invalid principal attached to context")
	}
	return p, nil
}
