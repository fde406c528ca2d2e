// Package entity contains the core business objects of the project.
package entity

// Subject is a taught subject, optionally carrying a short code such as "121".
type Subject struct {
	Audit

	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
