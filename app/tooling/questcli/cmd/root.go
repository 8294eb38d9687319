// Package cmd contains the questhub command line client.
package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var url string

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:3000", "Url of the questhub service.")
}

var rootCmd = &cobra.Command{
	Use:          "questcli",
	Short:        "Play the questhub games from the terminal",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// =============================================================================

var client = http.Client{Timeout: 10 * time.Second}

type apiError struct {
	Error  string            `json:"error"`
	Kind   string            `json:"kind"`
	Fields map[string]string `json:"fields"`
}

// call performs the request and decodes the response into v when v is
// not nil. Error responses are converted into a go error.
func call(method string, path string, body any, v any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url+"/v1"+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err != nil {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if ae.Kind != "" {
			return fmt.Errorf("%s: %s", ae.Kind, ae.Error)
		}
		return errors.New(ae.Error)
	}

	if v == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// show performs the request and prints the response as indented json.
func show(cmd *cobra.Command, method string, path string, body any) error {
	var v json.RawMessage
	if err := call(method, path, body, &v); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, v, "", "  "); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return nil
}
