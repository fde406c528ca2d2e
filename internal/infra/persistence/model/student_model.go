package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel mirrors the 'students' table. The class reference is RESTRICT:
// a class with enrolled students cannot be hard deleted.
type StudentModel struct {
	OwnedModel

	FirstName       string    `gorm:"type:varchar(255);not null"`
	LastName        string    `gorm:"type:varchar(255);not null"`
	DateOfBirth     time.Time `gorm:"type:date;not null"`
	AdmissionNumber string    `gorm:"type:varchar(255)"`
	Gender          string    `gorm:"type:varchar(1)"`
	ClassID         uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedBy *UserModel  `gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT"`
	Class     *ClassModel `gorm:"foreignKey:ClassID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
