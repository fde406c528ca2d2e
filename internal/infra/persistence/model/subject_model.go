package model

// SubjectModel mirrors the 'subjects' table.
type SubjectModel struct {
	OwnedModel

	Name string `gorm:"type:varchar(255);not null"`
	Code string `gorm:"type:varchar(10)"`

	CreatedBy *UserModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}
