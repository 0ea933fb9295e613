package dto

// HealthResponse describes the payload returned by /healthz.
// Datastore names the progress backend the process was started with.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Datastore string `json:"datastore,omitempty"`
}
