package postgres

import "gorm.io/gorm"

// Soft-deletion query scopes shared by every repository. Alive is the
// default for all lookups and listings; Dead and the unscoped FindAll paths
// are the only ways a soft-deleted row ever surfaces.

// Alive narrows a query to records that have not been soft deleted.
func Alive(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// Dead narrows a query to records that have been soft deleted.
func Dead(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NOT NULL")
}
