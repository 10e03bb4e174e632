package render

import (
	"encoding/json"
	"io"
)

// StepSummary is one step in `setup --json` output.
// This is the public contract for setup --json.
type StepSummary struct {
	// Step is the stable step name: clone, environment or files.
	Step string `json:"step"`

	// Status is done, present, skipped or failed.
	Status string `json:"status"`

	// Path is the directory the step targets (omitted for files).
	Path string `json:"path,omitempty"`

	// Files lists the relative paths written (files step only).
	Files []string `json:"files,omitempty"`

	// ErrorCode is the stable error code when Status is failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Error is the human-readable failure message.
	Error string `json:"error,omitempty"`

	// Stderr is the diagnostic captured from a failed command.
	Stderr string `json:"stderr,omitempty"`
}

// SetupSummary is the full `setup --json` document.
type SetupSummary struct {
	Root  string        `json:"root"`
	OK    bool          `json:"ok"`
	Steps []StepSummary `json:"steps"`
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
