package models

import (
	"time"
)

// Notification types.
const (
	NotificationLike    = "like"
	NotificationRetweet = "retweet"
	NotificationReply   = "reply"
)

// Notification is appended when someone likes, retweets, or replies to
// another user's tweet. Never created for a user's own tweets, never
// retracted when the engagement is undone.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index:idx_notifications_recipient_created" json:"recipientId"`
	SenderID    uint      `gorm:"not null" json:"senderId"`
	Sender      User      `gorm:"foreignKey:SenderID" json:"sender"`
	TweetID     uint      `gorm:"not null" json:"tweetId"`
	Type        string    `gorm:"type:varchar(16);not null" json:"type"`
	Message     string    `gorm:"not null" json:"message"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time `gorm:"index:idx_notifications_recipient_created" json:"createdAt"`
}
