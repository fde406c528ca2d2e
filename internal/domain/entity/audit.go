// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit is the base every owned school record embeds: identity, timestamps,
// owner attribution and the soft-deletion state. A record is "deleted" when
// DeletedAt is set; IsDeleted and IsActive are kept consistent with it at
// deletion time. Physical removal only happens through an explicit hard
// delete.
type Audit struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CreatedByID uuid.UUID  `json:"created_by"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	IsDeleted   bool       `json:"is_deleted"`
	IsActive    bool       `json:"is_active"`
}

// MarkDeleted flips the record into the soft-deleted state. The three fields
// always move together so that IsDeleted == (DeletedAt != nil) holds.
func (a *Audit) MarkDeleted(now time.Time) {
	a.DeletedAt = &now
	a.IsDeleted = true
	a.IsActive = false
}

// Alive reports whether the record has not been soft deleted.
func (a *Audit) Alive() bool {
	return a.DeletedAt == nil
}
