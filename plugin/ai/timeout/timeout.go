// Package timeout centralizes deadlines for external AI calls.
package timeout

import "time"

const (
	// GenerationTimeout bounds one agenda generation call. Exceeding it is
	// a hard failure, no artifact is persisted.
	GenerationTimeout = 30 * time.Second
)
