// Package store keeps generated content addressable by job id.
package store

import "relay/internal/content"

// Record is the immutable result of one generation request. It is created
// once, stored, and never updated.
type Record struct {
	JobID       string         `json:"jobId"`
	FormID      string         `json:"formId,omitempty"`
	Timestamp   string         `json:"timestamp"`
	AccountName string         `json:"accountName,omitempty"`
	Category    string         `json:"category,omitempty"`
	Prompt      string         `json:"prompt"`
	Type        string         `json:"type"`
	UserID      string         `json:"userId,omitempty"`
	SessionID   string         `json:"sessionId,omitempty"`
	Result      content.Result `json:"result"`
	Status      string         `json:"status"`
	Source      string         `json:"source"`
}

// Store is the job store contract. Implementations must be safe for
// concurrent use; there is deliberately no update or delete.
type Store interface {
	Put(rec Record)
	Get(jobID string) (Record, bool)
	List() []Record
}
