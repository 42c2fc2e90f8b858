package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ErrorResponse is written to stdout when a payload is rejected.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// rejectWith reports a user-facing message and returns the exit error for it.
func rejectWith(w io.Writer, code int, message string) error {
	if err := outputJSON(w, ErrorResponse{Error: message}); err != nil {
		return err
	}
	return &exitError{code: code}
}

// readPayload reads from path, or from r when path is empty or "-".
func readPayload(r io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
