// Package eventgrp maintains the group of handlers for the notification
// stream.
package eventgrp

import (
	"context"
	"net/http"
	"time"

	"github.com/ardanlabs/questhub/foundation/events"
	"github.com/ardanlabs/questhub/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of event endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	WS   websocket.Upgrader
	Evts *events.Events
}

// Events handles a web socket to provide game notifications to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	h.Log.Infow("websocket open", "traceid", v.TraceID)
	defer h.Log.Infow("websocket closed", "traceid", v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}

		case <-ctx.Done():
			return nil
		}
	}
}
