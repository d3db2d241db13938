package audit

import "time"

// Event records one accepted store command. Keep it transport-agnostic
// so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Collection string    `json:"collection"`
	Kind       string    `json:"kind"`
	Origin     string    `json:"origin"`
	TargetID   string    `json:"target_id,omitempty"`
}
