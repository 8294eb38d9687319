package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	amount string
	to     string
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Use the simulated wallet.",
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a simulated transaction.",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{
			"amount": amount,
			"to":     to,
		}
		return show(cmd, http.MethodPost, "/sandbox/send", body)
	},
}

func init() {
	rootCmd.AddCommand(sandboxCmd)

	sendCmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount to send, at most three decimals.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Address of the recipient.")
	sandboxCmd.AddCommand(sendCmd)

	sandboxCmd.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Print your balance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var v struct {
				Address string `json:"address"`
				Name    string `json:"name"`
				Balance string `json:"balance"`
			}
			if err := call(http.MethodGet, "/sandbox", nil, &v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", v.Name, v.Address, v.Balance)
			return nil
		},
	})

	sandboxCmd.AddCommand(&cobra.Command{
		Use:   "faucet",
		Short: "Request test tokens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/sandbox/faucet", nil)
		},
	})

	sandboxCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the wallet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/sandbox/reset", nil)
		},
	})

	sandboxCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the wallet state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodGet, "/sandbox", nil)
		},
	})
}
