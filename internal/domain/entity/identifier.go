// Package entity contains the core business objects of the project.
package entity

// IdentifierKind tags which login identifier a credential submission carries.
type IdentifierKind string

const (
	// IdentifierPhoneNumber marks an identifier as a phone number in E.164 form.
	IdentifierPhoneNumber IdentifierKind = "phone_number"
	// IdentifierEmail marks an identifier as an email address.
	IdentifierEmail IdentifierKind = "email"
	// IdentifierUsername marks an identifier as a username handle.
	IdentifierUsername IdentifierKind = "username"
)

// Identifier is a tagged login identifier. The transport layer decides which
// field the caller submitted and constructs the matching kind; nothing
// downstream inspects the raw string to guess what it is.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// PhoneNumber builds a phone-number identifier.
func PhoneNumber(value string) Identifier {
	return Identifier{Kind: IdentifierPhoneNumber, Value: value}
}

// Email builds an email identifier.
func Email(value string) Identifier {
	return Identifier{Kind: IdentifierEmail, Value: value}
}

// Username builds a username identifier.
func Username(value string) Identifier {
	return Identifier{Kind: IdentifierUsername, Value: value}
}

// IsZero reports whether no identifier was supplied.
func (i Identifier) IsZero() bool {
	return i.Kind == "" && i.Value == ""
}
