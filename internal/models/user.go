// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Auth providers a user account can be linked to.
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
	ProviderGithub      = "github"
)

// User represents an account in the Chirp application. Email is stored
// lowercased and is the identity resolved from the session on every
// authenticated call. Password is empty for OAuth-only accounts.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	Website   string    `json:"website"`
	Provider  string    `gorm:"not null;default:credentials" json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the projection of a user that is safe to embed in API
// responses. The password hash never leaves the server.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// PublicUser is the author projection joined onto tweets and notifications.
type PublicUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Follow links a follower to a followed user. The follower/following sets
// exist in the schema but no API operation mutates them yet.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"followerId"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`
}
