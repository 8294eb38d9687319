// Package sandboxgrp maintains the group of handlers for the transaction
// sandbox.
package sandboxgrp

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ardanlabs/questhub/business/core/sandbox"
	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of sandbox endpoints.
type Handlers struct {
	Log     *zap.SugaredLogger
	Sandbox *sandbox.Sandbox
}

// Send starts a simulated send. The response reports the send in flight; the
// result arrives on the event stream once the steps complete.
func (h Handlers) Send(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppSend
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	var amount sandbox.Amount
	if strings.TrimSpace(app.Amount) != "" {
		var err error
		if amount, err = sandbox.ParseAmount(app.Amount); err != nil {
			return errs.NewTrusted(fmt.Errorf("parsing amount: %w", err), http.StatusBadRequest)
		}
	}

	h.Log.Infow("sandbox send", "traceid", web.GetTraceID(ctx), "amount", amount, "to", app.To)

	if err := h.Sandbox.Send(amount, app.To); err != nil {
		return err
	}

	return web.Respond(ctx, w, h.Sandbox.Snapshot(), http.StatusAccepted)
}

// Faucet credits a random amount of test tokens.
func (h Handlers) Faucet(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	tx := h.Sandbox.Faucet()

	return web.Respond(ctx, w, tx, http.StatusOK)
}

// Reset restores the initial state.
func (h Handlers) Reset(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Sandbox.Reset()

	return web.Respond(ctx, w, h.Sandbox.Snapshot(), http.StatusOK)
}

// Query returns the current state of the sandbox.
func (h Handlers) Query(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Sandbox.Snapshot(), http.StatusOK)
}
