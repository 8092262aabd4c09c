package models

// User is a registered account. The password is stored as an opaque plaintext
// credential; this tool does no security hardening.
type User struct {
	Password string `json:"password"`
}
