// Package model contains the GORM persistence models mirroring the database
// tables. Exported types so the GORM Gen tool can consume them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnedModel carries the columns every owned school record shares: UUID key,
// timestamps, the owning user and the soft-deletion state. created_by_id is
// NOT NULL and the referencing constraint is RESTRICT, so an owner cannot be
// hard deleted while owned rows exist.
//
// Soft deletion is explicit: deleted_at, is_deleted and is_active move
// together in a single UPDATE, and only the FindAll query paths ever see
// rows where deleted_at is set.
type OwnedModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeletedAt   *time.Time `gorm:"index"`
	IsDeleted   bool       `gorm:"not null;default:false"`
	IsActive    bool       `gorm:"not null;default:true"`
}
