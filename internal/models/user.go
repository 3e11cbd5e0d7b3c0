// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an author identity. Accounts are created and authenticated
// by the external identity provider; this service only stores the profile row
// that posts, comments and follow edges reference.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	DisplayName string    `gorm:"size:150" json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
