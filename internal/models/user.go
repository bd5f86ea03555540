// Package models contains data structures for the application's domain entities.
package models

import "time"

// Group is the role assigned to a user account.
type Group string

const (
	GroupUser  Group = "user"
	GroupAdmin Group = "admin"
)

// User represents a registered account. The password hash is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Group        Group     `gorm:"type:varchar(16);not null;default:user" json:"group"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin group.
func (u *User) IsAdmin() bool {
	return u.Group == GroupAdmin
}

// Public returns the externally visible representation of the user.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"group":    u.Group,
	}
}
