// Package entity contains the core business objects of the project.
package entity

// Gender represents the optional gender attribute of a user or student.
type Gender string

const (
	// GenderFemale indicates a female record.
	GenderFemale Gender = "F"
	// GenderMale indicates a male record.
	GenderMale Gender = "M"
	// GenderOther indicates a record outside the binary choices.
	GenderOther Gender = "O"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value. The empty value is not
// valid; callers treat absence separately.
func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	default:
		return false
	}
}
