package domain

import "time"

// AuditFields holds the standard audit columns shared by every entity.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
