package plaittest

import "github.com/plait-network/plait"

// Handler is a mock implementation of the plait.Handler interface.
// Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult plait.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult plait.DeliverResult
	DeliverErr    error
}

var _ plait.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	h.checkCall++
	return h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	h.deliverCall++
	return h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// Decorator is a mock implementation of the plait.Decorator interface.
//
// Set CheckErr or DeliverErr to force an error response for the
// corresponding method. Otherwise the wrapped handler is called and its
// result returned. Each method call is counted either way.
type Decorator struct {
	checkCall int
	CheckErr  error

	deliverCall int
	DeliverErr  error
}

var _ plait.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx, next plait.Checker) (plait.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return plait.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx, next plait.Deliverer) (plait.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return plait.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate combines a handler with a single decorator.
func Decorate(h plait.Handler, d plait.Decorator) plait.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn plait.Handler
	dc plait.Decorator
}

var _ plait.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
