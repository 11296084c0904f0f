package repository

import (
	"context"
	"time"

	"chirp/internal/cache"
	"chirp/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository maintains the per-tweet engagement sets. Membership
// changes go through the store's atomic conflict-aware primitives, never a
// load-then-save cycle, so concurrent toggles cannot lose updates.
type EngagementRepository interface {
	IsEngaged(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) (bool, error)
	Add(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error
	Remove(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error
	Count(ctx context.Context, tweetID uint, kind models.EngagementKind) (int, error)
	EngagedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]models.Engagement, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository.
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) IsEngaged(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Engagement{}).
		Where("user_id = ? AND tweet_id = ? AND kind = ?", userID, tweetID, kind).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) Add(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error {
	// INSERT ... ON CONFLICT DO NOTHING keeps the add idempotent under
	// concurrent toggles; the unique index on (user_id, tweet_id, kind) is
	// the set-membership guarantee.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO engagements (user_id, tweet_id, kind, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, tweet_id, kind) DO NOTHING`,
		userID, tweetID, kind, time.Now().UTC(),
	)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	cache.InvalidateTweet(ctx, tweetID)
	return nil
}

func (r *engagementRepository) Remove(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ? AND kind = ?", userID, tweetID, kind).
		Delete(&models.Engagement{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTweet(ctx, tweetID)
	return nil
}

func (r *engagementRepository) Count(ctx context.Context, tweetID uint, kind models.EngagementKind) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Engagement{}).
		Where("tweet_id = ? AND kind = ?", tweetID, kind).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return int(count), nil
}

// EngagedTweetIDs returns the user's engagements across the given tweets,
// used to re-apply viewer flags onto cached feed pages.
func (r *engagementRepository) EngagedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]models.Engagement, error) {
	if len(tweetIDs) == 0 {
		return nil, nil
	}
	var engagements []models.Engagement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
		Find(&engagements).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return engagements, nil
}
