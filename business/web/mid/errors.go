package mid

import (
	"context"
	"net/http"

	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform way.
// Unexpected errors (status >= 500) are logged.
func Errors(log *zap.SugaredLogger) web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			// Run the next handler and catch any propagated error.
			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			// Let the shutdown error bubble up to the app.
			if web.IsShutdown(err) {
				return err
			}

			resp, status := errs.Classify(err)

			switch {
			case status >= http.StatusInternalServerError:
				log.Errorw("ERROR", "traceid", web.GetTraceID(ctx), "ERROR", err)
			default:
				log.Infow("rejected", "traceid", web.GetTraceID(ctx), "status", status, "ERROR", err)
			}

			// Respond with the error back to the client.
			if err := web.Respond(ctx, w, resp, status); err != nil {
				return err
			}

			return nil
		}

		return h
	}

	return m
}
