package domain

import "time"

// Snapshot records the last pipeline configuration written for a profile.
type Snapshot struct {
	Profile     string    `json:"profile"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Path        string    `json:"path,omitempty"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
