package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Build the block chain puzzle.",
}

func init() {
	rootCmd.AddCommand(puzzleCmd)

	puzzleCmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start a new puzzle.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/puzzle/start", nil)
		},
	})

	puzzleCmd.AddCommand(&cobra.Command{
		Use:   "place <block>",
		Short: "Place a block from the pool into the first empty slot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/puzzle/place/"+args[0], nil)
		},
	})

	puzzleCmd.AddCommand(&cobra.Command{
		Use:   "remove <slot>",
		Short: "Return the block in a slot to the pool.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/puzzle/remove/"+args[0], nil)
		},
	})

	puzzleCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the puzzle state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodGet, "/puzzle", nil)
		},
	})
}
