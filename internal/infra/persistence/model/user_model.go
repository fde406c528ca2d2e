package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and phone number are nullable
// pointers so that their unique indexes only bite when a value is present;
// an absent identifier is stored as NULL, never as "".
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FirstName    string     `gorm:"type:varchar(255);not null"`
	LastName     string     `gorm:"type:varchar(255)"`
	OtherNames   string     `gorm:"type:varchar(255)"`
	Username     string     `gorm:"type:varchar(10);unique;not null"`
	Email        *string    `gorm:"type:varchar(255);unique"`
	PhoneNumber  *string    `gorm:"type:varchar(25);unique"`
	Gender       string     `gorm:"type:varchar(1)"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	IsStaff      bool       `gorm:"not null;default:false"`
	IsSuperuser  bool       `gorm:"not null;default:false"`
	IsActive     bool       `gorm:"not null;default:true"`
	IsDeleted    bool       `gorm:"not null;default:false"`
	DateJoined   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
