package common

import (
	"github.com/google/uuid"
)

// NewRunID generates a unique identifier for one search invocation with
// the "run_" prefix. Attached to log events so interleaved output from
// scripted runs can be told apart.
// Format: run_<uuid>
func NewRunID() string {
	return "run_" + uuid.New().String()
}
