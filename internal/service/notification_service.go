package service

import (
	"context"
	"fmt"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

const previewRunes = 50

type NotificationService struct {
	notifRepo repository.NotificationRepository
}

// NotificationPage bundles a page of notifications with the unread
// total for the badge counter.
type NotificationPage struct {
	Notifications []*models.Notification `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// Emit records an engagement notification for the tweet author.
// Self-engagement is silently skipped. Delivery failures are the
// caller's to log; they must never fail the triggering action.
func (s *NotificationService) Emit(ctx context.Context, recipientID, senderID, tweetID uint, typ, tweetBody string) error {
	if recipientID == senderID {
		return nil
	}

	var verb string
	switch typ {
	case models.NotificationLike:
		verb = "liked"
	case models.NotificationRetweet:
		verb = "retweeted"
	case models.NotificationReply:
		verb = "replied to"
	default:
		return fmt.Errorf("unknown notification type %q", typ)
	}

	n := &models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		TweetID:     tweetID,
		Type:        typ,
		Message:     fmt.Sprintf("%s your tweet: %q", verb, preview(tweetBody)),
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		return err
	}

	observability.NotificationsEmitted.WithLabelValues(typ).Inc()
	return nil
}

func (s *NotificationService) List(ctx context.Context, recipientID uint, limit, offset int) (*NotificationPage, error) {
	notifications, err := s.notifRepo.ListByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	unread, err := s.notifRepo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &NotificationPage{Notifications: notifications, UnreadCount: unread}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID uint) error {
	n, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if n.RecipientID != recipientID {
		return models.NewUnauthorizedError("You can only update your own notifications")
	}

	if n.Read {
		return nil
	}

	return s.notifRepo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uint) error {
	return s.notifRepo.MarkAllRead(ctx, recipientID)
}

func preview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewRunes {
		return body
	}
	return string(runes[:previewRunes]) + "..."
}
