// Package puzzlegrp maintains the group of handlers for the block puzzle.
package puzzlegrp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ardanlabs/questhub/business/core/puzzle"
	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of puzzle endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Puzzle *puzzle.Puzzle
}

// Start shuffles the blocks and begins a new session.
func (h Handlers) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Puzzle.Start()

	h.Log.Infow("puzzle started", "traceid", web.GetTraceID(ctx))

	return web.Respond(ctx, w, h.Puzzle.Snapshot(), http.StatusOK)
}

// Place moves a block into the first empty slot.
func (h Handlers) Place(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := intParam(r, "id")
	if err != nil {
		return err
	}

	if err := h.Puzzle.Place(id); err != nil {
		return err
	}

	return web.Respond(ctx, w, h.Puzzle.Snapshot(), http.StatusOK)
}

// Remove returns the block in a slot to the pool.
func (h Handlers) Remove(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	slot, err := intParam(r, "slot")
	if err != nil {
		return err
	}

	if err := h.Puzzle.Remove(slot); err != nil {
		return err
	}

	return web.Respond(ctx, w, h.Puzzle.Snapshot(), http.StatusOK)
}

// Query returns the current state of the puzzle.
func (h Handlers) Query(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Puzzle.Snapshot(), http.StatusOK)
}

func intParam(r *http.Request, key string) (int, error) {
	v := web.Param(r, key)

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.NewTrusted(fmt.Errorf("invalid %s %q", key, v), http.StatusBadRequest)
	}

	return n, nil
}
