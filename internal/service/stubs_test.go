package service

import (
	"context"

	"chirp/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.User, error)
	getByEmailFn     func(context.Context, string) (*models.User, error)
	usernameExistsFn func(context.Context, string) (bool, error)
	createFn         func(context.Context, *models.User) error
	updateFn         func(context.Context, *models.User) error
	countUsersFn     func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.usernameExistsFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) CountUsers(ctx context.Context) (int64, error) {
	return s.countUsersFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:        func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:     func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		usernameExistsFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
		createFn:         func(_ context.Context, _ *models.User) error { return nil },
		updateFn:         func(_ context.Context, _ *models.User) error { return nil },
		countUsersFn:     func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// tweetRepoStub is a stub for repository.TweetRepository.
type tweetRepoStub struct {
	createFn         func(context.Context, *models.Tweet) error
	getByIDFn        func(context.Context, uint, uint) (*models.Tweet, error)
	listFeedFn       func(context.Context, int, int, uint) ([]*models.Tweet, error)
	listRepliesFn    func(context.Context, uint, uint) ([]*models.Tweet, error)
	listBookmarkedFn func(context.Context, uint, int, int) ([]*models.Tweet, error)
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *tweetRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Tweet, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *tweetRepoStub) ListFeed(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Tweet, error) {
	return s.listFeedFn(ctx, limit, offset, viewerID)
}
func (s *tweetRepoStub) ListReplies(ctx context.Context, parentID, viewerID uint) ([]*models.Tweet, error) {
	return s.listRepliesFn(ctx, parentID, viewerID)
}
func (s *tweetRepoStub) ListBookmarked(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	return s.listBookmarkedFn(ctx, userID, limit, offset)
}

func noopTweetRepo() *tweetRepoStub {
	return &tweetRepoStub{
		createFn:         func(_ context.Context, _ *models.Tweet) error { return nil },
		getByIDFn:        func(_ context.Context, _, _ uint) (*models.Tweet, error) { return &models.Tweet{}, nil },
		listFeedFn:       func(_ context.Context, _, _ int, _ uint) ([]*models.Tweet, error) { return nil, nil },
		listRepliesFn:    func(_ context.Context, _, _ uint) ([]*models.Tweet, error) { return nil, nil },
		listBookmarkedFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Tweet, error) { return nil, nil },
	}
}

// engagementRepoStub is a stub for repository.EngagementRepository.
type engagementRepoStub struct {
	isEngagedFn       func(context.Context, uint, uint, models.EngagementKind) (bool, error)
	addFn             func(context.Context, uint, uint, models.EngagementKind) error
	removeFn          func(context.Context, uint, uint, models.EngagementKind) error
	countFn           func(context.Context, uint, models.EngagementKind) (int, error)
	engagedTweetIDsFn func(context.Context, uint, []uint) ([]models.Engagement, error)
}

func (s *engagementRepoStub) IsEngaged(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) (bool, error) {
	return s.isEngagedFn(ctx, userID, tweetID, kind)
}
func (s *engagementRepoStub) Add(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error {
	return s.addFn(ctx, userID, tweetID, kind)
}
func (s *engagementRepoStub) Remove(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error {
	return s.removeFn(ctx, userID, tweetID, kind)
}
func (s *engagementRepoStub) Count(ctx context.Context, tweetID uint, kind models.EngagementKind) (int, error) {
	return s.countFn(ctx, tweetID, kind)
}
func (s *engagementRepoStub) EngagedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]models.Engagement, error) {
	return s.engagedTweetIDsFn(ctx, userID, tweetIDs)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		isEngagedFn: func(_ context.Context, _, _ uint, _ models.EngagementKind) (bool, error) {
			return false, nil
		},
		addFn:    func(_ context.Context, _, _ uint, _ models.EngagementKind) error { return nil },
		removeFn: func(_ context.Context, _, _ uint, _ models.EngagementKind) error { return nil },
		countFn:  func(_ context.Context, _ uint, _ models.EngagementKind) (int, error) { return 0, nil },
		engagedTweetIDsFn: func(_ context.Context, _ uint, _ []uint) ([]models.Engagement, error) {
			return nil, nil
		},
	}
}

// notifRepoStub is a stub for repository.NotificationRepository.
type notifRepoStub struct {
	createFn          func(context.Context, *models.Notification) error
	getByIDFn         func(context.Context, uint) (*models.Notification, error)
	listByRecipientFn func(context.Context, uint, int, int) ([]*models.Notification, error)
	countUnreadFn     func(context.Context, uint) (int64, error)
	markReadFn        func(context.Context, uint) error
	markAllReadFn     func(context.Context, uint) error
}

func (s *notifRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notifRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notifRepoStub) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error) {
	return s.listByRecipientFn(ctx, recipientID, limit, offset)
}
func (s *notifRepoStub) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	return s.countUnreadFn(ctx, recipientID)
}
func (s *notifRepoStub) MarkRead(ctx context.Context, id uint) error {
	return s.markReadFn(ctx, id)
}
func (s *notifRepoStub) MarkAllRead(ctx context.Context, recipientID uint) error {
	return s.markAllReadFn(ctx, recipientID)
}

func noopNotifRepo() *notifRepoStub {
	return &notifRepoStub{
		createFn:          func(_ context.Context, _ *models.Notification) error { return nil },
		getByIDFn:         func(_ context.Context, _ uint) (*models.Notification, error) { return &models.Notification{}, nil },
		listByRecipientFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Notification, error) { return nil, nil },
		countUnreadFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		markReadFn:        func(_ context.Context, _ uint) error { return nil },
		markAllReadFn:     func(_ context.Context, _ uint) error { return nil },
	}
}
