package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print your points and level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var v struct {
			Total  int `json:"total"`
			Level  int `json:"level"`
			ToNext int `json:"to_next"`
		}
		if err := call(http.MethodGet, "/progress", nil, &v); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "points %d  level %d  %d to next level\n", v.Total, v.Level, v.ToNext)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
