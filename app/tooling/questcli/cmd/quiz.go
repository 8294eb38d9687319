package cmd

import (
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play the timed quiz.",
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start a new quiz.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/quiz/start", nil)
		},
	})

	quizCmd.AddCommand(&cobra.Command{
		Use:   "answer <option>",
		Short: "Answer the current question, -1 submits no answer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			option, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return show(cmd, http.MethodPost, "/quiz/answer", map[string]int{"option": option})
		},
	})

	quizCmd.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Move to the next question.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/quiz/next", nil)
		},
	})

	quizCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the quiz state.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodGet, "/quiz", nil)
		},
	})
}
