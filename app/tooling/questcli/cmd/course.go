package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Follow the learning courses.",
}

func init() {
	rootCmd.AddCommand(courseCmd)

	courseCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the courses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodGet, "/courses", nil)
		},
	})

	courseCmd.AddCommand(&cobra.Command{
		Use:   "open <course>",
		Short: "Open a course.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/courses/"+args[0]+"/open", nil)
		},
	})

	courseCmd.AddCommand(&cobra.Command{
		Use:   "complete <course> <module>",
		Short: "Complete a module without a quiz.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, fmt.Sprintf("/courses/%s/modules/%s/complete", args[0], args[1]), nil)
		},
	})

	courseCmd.AddCommand(&cobra.Command{
		Use:   "answer <course> <module> <option>",
		Short: "Answer the quiz of a module.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			option, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			path := fmt.Sprintf("/courses/%s/modules/%s/answer", args[0], args[1])
			return show(cmd, http.MethodPost, path, map[string]int{"option": option})
		},
	})

	courseCmd.AddCommand(&cobra.Command{
		Use:   "restart <course>",
		Short: "Restart a course.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodPost, "/courses/"+args[0]+"/restart", nil)
		},
	})

	courseCmd.AddCommand(&cobra.Command{
		Use:   "show <course>",
		Short: "Print the state of an open course.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd, http.MethodGet, "/courses/"+args[0], nil)
		},
	})
}
