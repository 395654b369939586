// ABOUTME: User account model shared by the roster and the session.
// ABOUTME: Passwords are stored in plain text; this app has no real security.
package models

// User is a registered account. Email is the identity key and is compared
// case-sensitively everywhere. The same shape is persisted both in the
// registered-user roster and as the session document.
type User struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}
