// Package progressgrp maintains the group of handlers for player progress.
package progressgrp

import (
	"context"
	"net/http"

	"github.com/ardanlabs/questhub/business/core/progress"
	"github.com/ardanlabs/questhub/foundation/web"
)

// Handlers manages the set of progress endpoints.
type Handlers struct {
	Progress *progress.Progress
}

// Query returns the points, level and award history.
func (h Handlers) Query(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Progress.Snapshot(), http.StatusOK)
}
