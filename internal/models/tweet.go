package models

import (
	"time"
)

// MaxTweetLen is the maximum tweet body length in characters.
const MaxTweetLen = 280

// MaxTweetMedia is the maximum number of media attachments per tweet.
const MaxTweetMedia = 4

// Tweet represents a post in the Chirp application. A tweet with a non-nil
// ReplyToID is a reply; its parent's reply list is exactly the set of tweets
// whose ReplyToID names it, so creating a reply is a single-row insert.
type Tweet struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Body      string       `gorm:"type:text" json:"body"`
	UserID    uint         `gorm:"not null;index:idx_tweets_author_created" json:"userId"`
	Author    User         `gorm:"foreignKey:UserID" json:"author"`
	ReplyToID *uint        `gorm:"index" json:"replyTo,omitempty"`
	Media     []TweetMedia `gorm:"foreignKey:TweetID" json:"media,omitempty"`

	// Engagement counts are not persisted; computed at query time.
	LikeCount     int `gorm:"->" json:"likeCount"`
	RetweetCount  int `gorm:"->" json:"retweetCount"`
	BookmarkCount int `gorm:"->" json:"bookmarkCount"`
	ReplyCount    int `gorm:"->" json:"replyCount"`

	// Viewer flags indicate whether the requesting user engaged (computed).
	Liked      bool `gorm:"->" json:"liked"`
	Retweeted  bool `gorm:"->" json:"retweeted"`
	Bookmarked bool `gorm:"->" json:"bookmarked"`

	CreatedAt time.Time `gorm:"index:idx_tweets_author_created" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TweetMedia is one inlined media attachment. Data holds the raw data URI;
// Position preserves attachment order.
type TweetMedia struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	TweetID  uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null" json:"position"`
	Data     string `gorm:"type:text;not null" json:"data"`
}
