// Package app assembles handlers and decorators into a processing stack
// for incoming transactions.
package app

import (
	"regexp"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]plait.Handler
}

var _ plait.Registry = (*Router)(nil)
var _ plait.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]plait.Handler),
	}
}

// Handle assigns the given handler to the path. Panic on invalid path or
// a duplicate registration, as both are static setup mistakes.
func (r *Router) Handle(path string, h plait.Handler) {
	if !isPath(path) {
		panic("paths can only contain lowercase alphanumeric characters, underscore or slash")
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path, or a notFound
// handler when no route matches.
func (r *Router) handler(tx plait.Tx) plait.Handler {
	path := plait.GetPath(tx)
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx plait.Context, store plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	return r.handler(tx).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx plait.Context, store plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound, mentioning the path that
// did not resolve.
type notFoundHandler string

var _ plait.Handler = notFoundHandler("")

func (path notFoundHandler) Check(plait.Context, plait.KVStore, plait.Tx) (plait.CheckResult, error) {
	return plait.CheckResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(plait.Context, plait.KVStore, plait.Tx) (plait.DeliverResult, error) {
	return plait.DeliverResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
