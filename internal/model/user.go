package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted here because these structs are used internally by the
// repository and auth layers; handlers define separate response types so
// that PasswordHash can never be serialized outward.
type User struct {
	ID           uint64    // users.id
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	EmailAddress string    // users.email_address (unique)
	PasswordHash string    // users.password_hash (bcrypt, never the plaintext)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
