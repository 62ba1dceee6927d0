package domain

import "time"

// AuditFields carries who created and last touched an entity, and when.
// Embedded by every persisted domain type.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // user ID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // user ID
}
