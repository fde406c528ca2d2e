// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Class is a school class (form/stream). The class teacher is optional and
// merely references a user; removing the user clears the reference rather
// than deleting the class.
type Class struct {
	Audit

	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	ClassTeacherID *uuid.UUID `json:"class_teacher,omitempty"`
	ClassTeacher   *User      `json:"class_teacher_details,omitempty"`
}
