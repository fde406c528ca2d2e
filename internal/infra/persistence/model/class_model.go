package model

import "github.com/google/uuid"

// ClassModel mirrors the 'classes' table. The class teacher reference is
// SET NULL on removal; the owner reference is RESTRICT like every owned row.
type ClassModel struct {
	OwnedModel

	Name           string     `gorm:"type:varchar(25);unique;not null"`
	Description    string     `gorm:"type:text"`
	ClassTeacherID *uuid.UUID `gorm:"type:uuid"`

	CreatedBy    *UserModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT"`
	ClassTeacher *UserModel `gorm:"foreignKey:ClassTeacherID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ClassModel) TableName() string {
	return "classes"
}
