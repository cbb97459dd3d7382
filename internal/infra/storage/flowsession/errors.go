package flowsession

import "errors"

var (
	// ErrNotFound сценарий не найден или истёк TTL
	ErrNotFound = errors.New("flow session not found")
)
