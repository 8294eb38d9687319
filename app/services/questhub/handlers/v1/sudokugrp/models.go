package sudokugrp

import "github.com/ardanlabs/questhub/business/core/sudoku"

// AppSelect is the payload for selecting a cell.
type AppSelect struct {
	Row *int `json:"row" validate:"required,gte=0,lte=3"`
	Col *int `json:"col" validate:"required,gte=0,lte=3"`
}

// AppPlace is the payload for placing a symbol.
type AppPlace struct {
	Symbol string `json:"symbol" validate:"required"`
}

// AppSudoku is the sudoku state with a text rendering of the board.
type AppSudoku struct {
	sudoku.Snapshot
	Text string `json:"text"`
}

func toAppSudoku(snap sudoku.Snapshot) AppSudoku {
	return AppSudoku{
		Snapshot: snap,
		Text:     snap.Board.String(),
	}
}
