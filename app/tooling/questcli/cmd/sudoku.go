package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

type sudokuView struct {
	Mistakes    int    `json:"mistakes"`
	HintsLeft   int    `json:"hints_left"`
	ElapsedText string `json:"elapsed_text"`
	Complete    bool   `json:"complete"`
	Score       int    `json:"score"`
	Text        string `json:"text"`
}

var sudokuCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve the symbol sudoku.",
}

func init() {
	rootCmd.AddCommand(sudokuCmd)

	sudokuCmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start a new board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return board(cmd, http.MethodPost, "/sudoku/start", nil)
		},
	})

	sudokuCmd.AddCommand(&cobra.Command{
		Use:   "select <row> <col>",
		Short: "Select a cell.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			return board(cmd, http.MethodPost, "/sudoku/select", map[string]int{"row": row, "col": col})
		},
	})

	sudokuCmd.AddCommand(&cobra.Command{
		Use:   "place <symbol>",
		Short: "Place a symbol in the selected cell.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return board(cmd, http.MethodPost, "/sudoku/place", map[string]string{"symbol": args[0]})
		},
	})

	sudokuCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the selected cell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return board(cmd, http.MethodPost, "/sudoku/clear", nil)
		},
	})

	sudokuCmd.AddCommand(&cobra.Command{
		Use:   "hint",
		Short: "Fill the first empty cell.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return board(cmd, http.MethodPost, "/sudoku/hint", nil)
		},
	})

	sudokuCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return board(cmd, http.MethodGet, "/sudoku", nil)
		},
	})
}

func board(cmd *cobra.Command, method string, path string, body any) error {
	var v sudokuView
	if err := call(method, path, body, &v); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, v.Text)
	fmt.Fprintf(out, "time %s  mistakes %d  hints left %d\n", v.ElapsedText, v.Mistakes, v.HintsLeft)
	if v.Complete {
		fmt.Fprintf(out, "complete, score %d\n", v.Score)
	}

	return nil
}
