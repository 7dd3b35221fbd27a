package plaittest

import (
	"context"
	"fmt"

	"github.com/plait-network/plait"
)

// Auth is a mock implementing the x.Authenticator interface.
//
// It authenticates any of the referenced conditions. You can use either
// the Signer or the Signers attribute (or both); every declared signer
// is considered each time.
type Auth struct {
	// Signer is a convenience attribute when a single signer is enough.
	Signer plait.Condition

	// Signers authenticates multiple signers at once.
	Signers []plait.Condition
}

func (a *Auth) GetConditions(plait.Context) []plait.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx plait.Context, addr plait.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

// CtxAuth is a mock implementing the x.Authenticator interface that
// stores and retrieves conditions from the context.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx plait.Context, conds ...plait.Condition) plait.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx plait.Context) []plait.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]plait.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []plait.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx plait.Context, addr plait.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
