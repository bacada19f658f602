package utils

import "github.com/google/uuid"

// NewRequestID returns a unique id attached to each outbound backend call
// for log correlation.
func NewRequestID() string {
	return uuid.NewString()
}
