package service

import (
	"context"

	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

type EngagementService struct {
	engageRepo repository.EngagementRepository
	tweetRepo  repository.TweetRepository
	userRepo   repository.UserRepository
	notifier   *NotificationService
}

func NewEngagementService(engageRepo repository.EngagementRepository, tweetRepo repository.TweetRepository, userRepo repository.UserRepository, notifier *NotificationService) *EngagementService {
	return &EngagementService{engageRepo: engageRepo, tweetRepo: tweetRepo, userRepo: userRepo, notifier: notifier}
}

// Toggle flips the actor's membership in the tweet's set for the given
// kind and reports the resulting state plus the fresh count. Adding a
// like or retweet notifies the tweet's author; removals and bookmarks
// stay silent.
func (s *EngagementService) Toggle(ctx context.Context, kind models.EngagementKind, tweetID, actorID uint) (*models.ToggleResult, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Unknown engagement kind")
	}
	if actorID == 0 {
		return nil, models.NewAuthRequiredError("You must be logged in to perform this action")
	}

	if _, err := s.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	tweet, err := s.tweetRepo.GetByID(ctx, tweetID, 0)
	if err != nil {
		return nil, err
	}

	engaged, err := s.engageRepo.IsEngaged(ctx, actorID, tweetID, kind)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if engaged {
		if err := s.engageRepo.Remove(ctx, actorID, tweetID, kind); err != nil {
			return nil, models.NewInternalError(err)
		}
		observability.EngagementToggles.WithLabelValues(string(kind), "remove").Inc()
	} else {
		if err := s.engageRepo.Add(ctx, actorID, tweetID, kind); err != nil {
			return nil, models.NewInternalError(err)
		}
		observability.EngagementToggles.WithLabelValues(string(kind), "add").Inc()

		if typ := notificationType(kind); typ != "" {
			if err := s.notifier.Emit(ctx, tweet.UserID, actorID, tweetID, typ, tweet.Body); err != nil {
				middleware.Logger.ErrorContext(ctx, "engagement notification failed",
					"error", err, "kind", string(kind), "tweet_id", tweetID)
			}
		}
	}

	count, err := s.engageRepo.Count(ctx, tweetID, kind)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &models.ToggleResult{Kind: kind, Active: !engaged, Count: count}, nil
}

// notificationType maps engagement kinds onto notification types.
// Bookmarks are private and produce none.
func notificationType(kind models.EngagementKind) string {
	switch kind {
	case models.EngagementLike:
		return models.NotificationLike
	case models.EngagementRetweet:
		return models.NotificationRetweet
	default:
		return ""
	}
}
