package entity

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext
// never leaves the create/patch request scope.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}
