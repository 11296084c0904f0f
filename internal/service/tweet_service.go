package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"chirp/internal/cache"
	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/repository"
)

// DefaultFeedLimit is the page size handed out when the client does
// not ask for one.
const DefaultFeedLimit = 20

type TweetService struct {
	tweetRepo  repository.TweetRepository
	engageRepo repository.EngagementRepository
	userRepo   repository.UserRepository
	notifier   *NotificationService
}

type CreateTweetInput struct {
	UserID    uint
	Body      string
	Media     []string
	ReplyToID *uint
}

func NewTweetService(tweetRepo repository.TweetRepository, engageRepo repository.EngagementRepository, userRepo repository.UserRepository, notifier *NotificationService) *TweetService {
	return &TweetService{tweetRepo: tweetRepo, engageRepo: engageRepo, userRepo: userRepo, notifier: notifier}
}

// CreateTweet validates and stores a tweet. When ReplyToID is set the
// parent must exist; the reply lands in the parent's thread and the
// parent's author is notified in the same call.
func (s *TweetService) CreateTweet(ctx context.Context, in CreateTweetInput) (*models.Tweet, error) {
	body := strings.TrimSpace(in.Body)

	if body == "" && len(in.Media) == 0 {
		return nil, models.NewValidationError("Tweet must have text or media")
	}
	if utf8.RuneCountInString(body) > models.MaxTweetLen {
		return nil, models.NewValidationError("Tweet must be 280 characters or fewer")
	}
	if len(in.Media) > models.MaxTweetMedia {
		return nil, models.NewValidationError("Tweet may carry at most 4 media attachments")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	var parent *models.Tweet
	if in.ReplyToID != nil {
		var err error
		parent, err = s.tweetRepo.GetByID(ctx, *in.ReplyToID, 0)
		if err != nil {
			return nil, err
		}
	}

	tweet := &models.Tweet{
		Body:      body,
		UserID:    in.UserID,
		ReplyToID: in.ReplyToID,
	}
	for i, m := range in.Media {
		if strings.TrimSpace(m) == "" {
			return nil, models.NewValidationError("Media attachments cannot be empty")
		}
		tweet.Media = append(tweet.Media, models.TweetMedia{Position: i, Data: m})
	}

	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, models.NewInternalError(err)
	}

	if parent == nil {
		cache.InvalidateFeed(ctx)
	} else {
		if err := s.notifier.Emit(ctx, parent.UserID, in.UserID, parent.ID, models.NotificationReply, body); err != nil {
			middleware.Logger.ErrorContext(ctx, "reply notification failed", "error", err, "tweet_id", parent.ID)
		}
	}

	return s.tweetRepo.GetByID(ctx, tweet.ID, in.UserID)
}

func (s *TweetService) GetTweet(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	return tweet, nil
}

// ListFeed returns top-level tweets newest first. The first default
// page is served from a short-lived cache of the anonymous rendering;
// viewer flags are overlaid afterwards so cached pages stay shareable.
func (s *TweetService) ListFeed(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Tweet, error) {
	if offset == 0 && limit == DefaultFeedLimit {
		var tweets []*models.Tweet
		err := cache.Aside(ctx, cache.FeedKey, &tweets, cache.FeedTTL, func() error {
			var err error
			tweets, err = s.tweetRepo.ListFeed(ctx, limit, offset, 0)
			return err
		})
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if viewerID != 0 {
			if err := s.applyViewerFlags(ctx, viewerID, tweets); err != nil {
				return nil, models.NewInternalError(err)
			}
		}
		return tweets, nil
	}

	tweets, err := s.tweetRepo.ListFeed(ctx, limit, offset, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

// ListReplies returns a tweet's direct replies, newest first. An
// unknown parent yields an empty list rather than an error.
func (s *TweetService) ListReplies(ctx context.Context, parentID uint, viewerID uint) ([]*models.Tweet, error) {
	replies, err := s.tweetRepo.ListReplies(ctx, parentID, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (s *TweetService) ListBookmarks(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	tweets, err := s.tweetRepo.ListBookmarked(ctx, userID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tweets, nil
}

// applyViewerFlags stamps liked/retweeted/bookmarked onto tweets that
// came out of the anonymous cache.
func (s *TweetService) applyViewerFlags(ctx context.Context, viewerID uint, tweets []*models.Tweet) error {
	if len(tweets) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}

	engagements, err := s.engageRepo.EngagedTweetIDs(ctx, viewerID, ids)
	if err != nil {
		return err
	}

	byTweet := make(map[uint][]models.EngagementKind, len(engagements))
	for _, e := range engagements {
		byTweet[e.TweetID] = append(byTweet[e.TweetID], e.Kind)
	}

	for _, t := range tweets {
		for _, kind := range byTweet[t.ID] {
			switch kind {
			case models.EngagementLike:
				t.Liked = true
			case models.EngagementRetweet:
				t.Retweeted = true
			case models.EngagementBookmark:
				t.Bookmarked = true
			}
		}
	}
	return nil
}
