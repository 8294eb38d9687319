// Package quizgrp maintains the group of handlers for the quiz.
package quizgrp

import (
	"context"
	"net/http"

	"github.com/ardanlabs/questhub/business/core/quiz"
	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of quiz endpoints.
type Handlers struct {
	Log  *zap.SugaredLogger
	Quiz *quiz.Quiz
}

// Start begins a new quiz session.
func (h Handlers) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Quiz.Start()

	h.Log.Infow("quiz started", "traceid", web.GetTraceID(ctx))

	return web.Respond(ctx, w, h.Quiz.Snapshot(), http.StatusOK)
}

// Answer submits an answer to the current question.
func (h Handlers) Answer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppAnswer
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.Quiz.Submit(*app.Option); err != nil {
		return err
	}

	return web.Respond(ctx, w, h.Quiz.Snapshot(), http.StatusOK)
}

// Next moves to the next question or finishes the quiz.
func (h Handlers) Next(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.Quiz.Advance(); err != nil {
		return err
	}

	return web.Respond(ctx, w, h.Quiz.Snapshot(), http.StatusOK)
}

// Query returns the current state of the quiz.
func (h Handlers) Query(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Quiz.Snapshot(), http.StatusOK)
}
