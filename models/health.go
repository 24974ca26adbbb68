package models

// HealthStatus is the backend's self-reported health snapshot.
type HealthStatus struct {
	Status    string `json:"status"`
	DemoMode  bool   `json:"demo_mode"`
	Database  string `json:"database"` // "connected" or "local_mode"
	Timestamp string `json:"timestamp"`
}
