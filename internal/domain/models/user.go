// internal/domain/models/user.go
package models

import "time"

// User mirrors the account from the external identity provider.
//
// The document _id is the provider's opaque user id (a string, not an
// ObjectID), so the first-sign-in upsert is naturally idempotent:
// writing the same identity twice lands on the same document.
type User struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`

	// Role is resolved from the admin allowlist at sign-in:
	// "admin" or "member".
	Role string `bson:"role" json:"role"`

	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	LastLoginAt time.Time `bson:"last_login_at" json:"last_login_at"`
}
