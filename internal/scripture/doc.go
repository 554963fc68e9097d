// Package scripture wraps the remote scripture REST API behind a small
// client. The API is treated as unreliable: timeouts, non-200 responses and
// malformed bodies are all surfaced as errors for the caller's retry policy.
package scripture
