package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// APIGet performs a raw GET against the radio server and prints the response.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = "/"
	}

	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}

	return r.printAPIResponse(resp.StatusCode, resp.IsJSON, resp.JSONData, resp.Body)
}

// APIPost performs a raw POST with an optional JSON body and prints the response.
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("path argument is required")
	}

	body := []byte(cmd.String("data"))

	resp, err := r.api.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("POST %s failed: %w", path, err)
	}

	return r.printAPIResponse(resp.StatusCode, resp.IsJSON, resp.JSONData, resp.Body)
}

func (r *Runner) printAPIResponse(code int, isJSON bool, jsonData any, body []byte) error {
	r.writePlainln("HTTP %d", code)

	if isJSON {
		return r.writeJSON(jsonData, true)
	}
	if len(body) > 0 {
		return r.writePlainln("%s", string(body))
	}
	return nil
}
