package models

import (
	"time"
)

// EngagementKind discriminates the three per-tweet engagement sets.
type EngagementKind string

const (
	EngagementLike     EngagementKind = "like"
	EngagementRetweet  EngagementKind = "retweet"
	EngagementBookmark EngagementKind = "bookmark"
)

// Valid reports whether k is one of the known engagement kinds.
func (k EngagementKind) Valid() bool {
	switch k {
	case EngagementLike, EngagementRetweet, EngagementBookmark:
		return true
	}
	return false
}

// Engagement records a user's membership in one of a tweet's engagement sets.
// The (user, tweet, kind) triple is unique, which is what makes the toggle's
// add branch an atomic insert-on-conflict rather than a read-modify-write.
type Engagement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_user_tweet_kind" json:"userId"`
	TweetID   uint           `gorm:"not null;uniqueIndex:idx_user_tweet_kind;index" json:"tweetId"`
	Kind      EngagementKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_user_tweet_kind" json:"kind"`
	CreatedAt time.Time      `json:"createdAt"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Tweet Tweet `gorm:"foreignKey:TweetID" json:"-"`
}

// ToggleResult is the outcome of flipping a membership: the new state and the
// new size of the set that was toggled.
type ToggleResult struct {
	Kind   EngagementKind `json:"-"`
	Active bool           `json:"-"`
	Count  int            `json:"-"`
}
