package models

// AdminCredential is the single shared admin login. Password holds a bcrypt
// hash, not the plaintext.
type AdminCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
