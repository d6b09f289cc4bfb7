// Package users holds the reviewer and administrator accounts referenced by
// cases, documents, and the review journal.
package users

import "time"

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleLegalAnalyst Role = "legal_analyst"
	RoleReviewer     Role = "reviewer"
	RoleViewer       Role = "viewer"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// User is a catalog account. Accounts are never authenticated against.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
