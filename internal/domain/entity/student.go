// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Student is a pupil enrolled in a class. A student always belongs to a
// class; the class cannot be hard deleted while students reference it.
type Student struct {
	Audit

	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	AdmissionNumber string    `json:"admission_number,omitempty"`
	Gender          Gender    `json:"gender,omitempty"`
	ClassID         uuid.UUID `json:"student_class"`
	Class           *Class    `json:"student_class_details,omitempty"`
}

// FullName joins the student's first and last names.
func (s *Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
