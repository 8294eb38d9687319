// Package sudokugrp maintains the group of handlers for the sudoku.
package sudokugrp

import (
	"context"
	"net/http"

	"github.com/ardanlabs/questhub/business/core/sudoku"
	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of sudoku endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Sudoku *sudoku.Sudoku
}

// Start regenerates the grid and begins a new session.
func (h Handlers) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Sudoku.Start()

	h.Log.Infow("sudoku started", "traceid", web.GetTraceID(ctx))

	return web.Respond(ctx, w, toAppSudoku(h.Sudoku.Snapshot()), http.StatusOK)
}

// Select chooses the cell the next symbol goes into.
func (h Handlers) Select(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppSelect
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.Sudoku.Select(*app.Row, *app.Col); err != nil {
		return err
	}

	return web.Respond(ctx, w, toAppSudoku(h.Sudoku.Snapshot()), http.StatusOK)
}

// Place writes a symbol into the selected cell.
func (h Handlers) Place(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppPlace
	if err := web.Decode(r, &app); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.Sudoku.Place(app.Symbol); err != nil {
		return err
	}

	return web.Respond(ctx, w, toAppSudoku(h.Sudoku.Snapshot()), http.StatusOK)
}

// Clear empties the selected cell.
func (h Handlers) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.Sudoku.Clear(); err != nil {
		return err
	}

	return web.Respond(ctx, w, toAppSudoku(h.Sudoku.Snapshot()), http.StatusOK)
}

// Hint fills the first empty cell.
func (h Handlers) Hint(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.Sudoku.Hint(); err != nil {
		return err
	}

	return web.Respond(ctx, w, toAppSudoku(h.Sudoku.Snapshot()), http.StatusOK)
}

// Query returns the current state of the sudoku.
func (h Handlers) Query(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, toAppSudoku(h.Sudoku.Snapshot()), http.StatusOK)
}
