package repository

import (
	"context"
	"errors"

	"chirp/internal/cache"
	"chirp/internal/models"

	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations.
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error)
	ListFeed(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Tweet, error)
	ListReplies(ctx context.Context, parentID uint, viewerID uint) ([]*models.Tweet, error)
	ListBookmarked(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository creates a new tweet repository.
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	if tweet.ReplyToID != nil {
		cache.InvalidateTweet(ctx, *tweet.ReplyToID)
	}
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error) {
	var tweet models.Tweet

	fetch := func() error {
		err := r.applyTweetDetails(r.db.WithContext(ctx), viewerID).
			Preload("Author").
			Preload("Media", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			First(&tweet, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Tweet", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var err error
	if viewerID == 0 {
		err = cache.Aside(ctx, cache.TweetKey(id), &tweet, cache.TweetTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) ListFeed(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	err := r.applyTweetDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("reply_to_id IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) ListReplies(ctx context.Context, parentID uint, viewerID uint) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	err := r.applyTweetDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("reply_to_id = ?", parentID).
		Order("created_at DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

func (r *tweetRepository) ListBookmarked(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	err := r.applyTweetDetails(r.db.WithContext(ctx), userID).
		Preload("Author").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Joins("JOIN engagements ON engagements.tweet_id = tweets.id AND engagements.kind = 'bookmark' AND engagements.user_id = ?", userID).
		Order("engagements.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tweets).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

// applyTweetDetails adds subqueries to fetch engagement counts and viewer
// flags in a single query.
func (r *tweetRepository) applyTweetDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "tweets.*, " +
		"(SELECT COUNT(*) FROM engagements WHERE engagements.tweet_id = tweets.id AND engagements.kind = 'like') AS like_count, " +
		"(SELECT COUNT(*) FROM engagements WHERE engagements.tweet_id = tweets.id AND engagements.kind = 'retweet') AS retweet_count, " +
		"(SELECT COUNT(*) FROM engagements WHERE engagements.tweet_id = tweets.id AND engagements.kind = 'bookmark') AS bookmark_count, " +
		"(SELECT COUNT(*) FROM tweets AS replies WHERE replies.reply_to_id = tweets.id) AS reply_count"

	if viewerID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM engagements WHERE engagements.tweet_id = tweets.id AND engagements.kind = 'like' AND engagements.user_id = ?) AS liked"+
			", EXISTS(SELECT 1 FROM engagements WHERE engagements.tweet_id = tweets.id AND engagements.kind = 'retweet' AND engagements.user_id = ?) AS retweeted"+
			", EXISTS(SELECT 1 FROM engagements WHERE engagements.tweet_id = tweets.id AND engagements.kind = 'bookmark' AND engagements.user_id = ?) AS bookmarked",
			viewerID, viewerID, viewerID)
	}

	return db.Select(selectQuery + ", false AS liked, false AS retweeted, false AS bookmarked")
}
