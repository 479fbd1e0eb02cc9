package models

// Status is the lifecycle stage of a tracked application.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusRejected  Status = "Rejected"
	StatusAccepted  Status = "Accepted"
)

// Statuses lists every recognized status in display order.
var Statuses = []Status{StatusApplied, StatusInterview, StatusRejected, StatusAccepted}

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// JobRecord is one tracked job application. The whole collection is
// persisted as a single unit; every mutation rewrites the full collection.
type JobRecord struct {
	ID        int64         `json:"id"`
	Position  string        `json:"position"`
	Company   string        `json:"company"`
	Status    Status        `json:"status"`
	Date      string        `json:"date,omitempty"` // YYYY-MM-DD application date
	Notes     string        `json:"notes"`
	Documents []JobDocument `json:"documents"`
}

// JobDocument is a job-scoped attachment embedded in the record itself.
// These are copies, not references into the folder/file object store.
type JobDocument struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	MediaType string `json:"type"`
	Data      string `json:"data"` // inline base64 payload
}

// CreateJobRequest carries the fields supplied by the add-job flow.
type CreateJobRequest struct {
	Position  string        `json:"position"`
	Company   string        `json:"company"`
	Status    Status        `json:"status,omitempty"`
	Date      string        `json:"date,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Documents []JobDocument `json:"documents,omitempty"`
}

// UpdateJobRequest is a full-field overwrite keyed by the record id.
type UpdateJobRequest struct {
	Position  string        `json:"position"`
	Company   string        `json:"company"`
	Status    Status        `json:"status"`
	Date      string        `json:"date,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Documents []JobDocument `json:"documents,omitempty"`
}
