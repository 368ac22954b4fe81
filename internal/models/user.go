// internal/models/user.go
package models

import "time"

// UserProfile is the storefront-side profile for an identity resolved by
// the external identity provider. Role is only ever set out of band; the
// profile-update path must never touch it.
type UserProfile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Role      Role       `json:"role"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
