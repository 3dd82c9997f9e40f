// Package transcribe defines the transcription backend interface and common
// types for interacting with speech-to-text implementations.
package transcribe

import (
	"context"
)

// Backend is the interface transcription implementations must satisfy.
// Implementations accept a local audio file and return plain transcript
// text; the caller never knows whether inference ran in-process or against
// a hosted API.
type Backend interface {
	// Name returns the backend's unique name.
	Name() string
	// Available checks if the backend is ready to handle requests.
	Available(ctx context.Context) bool
	// Transcribe converts the audio file into text.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
