/*
Package x holds the interfaces shared by all contract extensions, most
importantly the Authenticator used to verify which identities authorized
the current call.
*/
package x

import (
	"github.com/plait-network/plait"
)

// Authenticator is an interface we can use to extract authentication
// info from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system, rather than
// hard-coding one implementation for all extensions.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled by the current
	// call; you may want the GetAddresses helper.
	GetConditions(plait.Context) []plait.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(plait.Context, plait.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx plait.Context) []plait.Condition {
	var res []plait.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx plait.Context, addr plait.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx plait.Context, auth Authenticator) []plait.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]plait.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first condition fulfilled by the call, if any,
// otherwise nil.
func MainSigner(ctx plait.Context, auth Authenticator) plait.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
