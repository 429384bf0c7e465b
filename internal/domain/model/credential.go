package model

// AdminCredential is the single admin account of a deployment. The JSON tags
// match the on-disk admin file: the stored "password" is a bcrypt hash, never
// the plaintext.
type AdminCredential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Email        string `json:"email"`
}
