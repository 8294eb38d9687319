// Package coursegrp maintains the group of handlers for courses.
package coursegrp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ardanlabs/questhub/business/core/course"
	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of course endpoints.
type Handlers struct {
	Log     *zap.SugaredLogger
	Courses *course.Catalog
}

// List returns every course in the catalog.
func (h Handlers) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Courses.Courses(), http.StatusOK)
}

// Open starts tracking a course.
func (h Handlers) Open(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	crs, err := h.Courses.Open(web.Param(r, "id"))
	if err != nil {
		return err
	}

	h.Log.Infow("course opened", "traceid", web.GetTraceID(ctx), "course", crs.ID())

	return web.Respond(ctx, w, crs.Snapshot(), http.StatusOK)
}

// Complete completes a module without a quiz.
func (h Handlers) Complete(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	crs, err := h.module(r)
	if err != nil {
		return err
	}

	if err := crs.Complete(); err != nil {
		return err
	}

	return web.Respond(ctx, w, crs.Snapshot(), http.StatusOK)
}

// Answer answers the quiz of a module.
func (h Handlers) Answer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppAnswer
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	crs, err := h.module(r)
	if err != nil {
		return err
	}

	correct, err := crs.Answer(*app.Option)
	if err != nil {
		return err
	}

	resp := AppAnswerResult{
		Correct: correct,
		Course:  crs.Snapshot(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Restart clears the progress of a course.
func (h Handlers) Restart(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	crs, err := h.Courses.Get(web.Param(r, "id"))
	if err != nil {
		return err
	}

	crs.Restart()

	return web.Respond(ctx, w, crs.Snapshot(), http.StatusOK)
}

// Query returns the state of an open course.
func (h Handlers) Query(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	crs, err := h.Courses.Get(web.Param(r, "id"))
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, crs.Snapshot(), http.StatusOK)
}

// module looks up the open course and moves it to the module in the path.
func (h Handlers) module(r *http.Request) (*course.Course, error) {
	crs, err := h.Courses.Get(web.Param(r, "id"))
	if err != nil {
		return nil, err
	}

	v := web.Param(r, "index")
	index, err := strconv.Atoi(v)
	if err != nil {
		return nil, errs.NewTrusted(fmt.Errorf("invalid module index %q", v), http.StatusBadRequest)
	}

	if err := crs.Select(index); err != nil {
		return nil, err
	}

	return crs, nil
}
