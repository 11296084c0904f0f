package server

import (
	"context"

	"chirp/internal/models"

	"github.com/stretchr/testify/mock"
)

// recordedCtx substitutes the request context before the mock records it.
// Handlers pass fiber's c.Context(), a pooled *fasthttp.RequestCtx; if the
// mock retains it, formatting the recorded call later (AssertExpectations,
// failure output) invokes RequestCtx.String, whose lazy URI parse marks the
// reset ctx's empty URI as parsed and breaks routing for the next request
// that reuses the ctx. Every expectation matches the ctx with mock.Anything,
// so recording a stable context instead is observationally equivalent.
func recordedCtx(context.Context) context.Context { return context.Background() }

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(recordedCtx(ctx), id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(recordedCtx(ctx), email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(recordedCtx(ctx), username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(recordedCtx(ctx), user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(recordedCtx(ctx), user)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(recordedCtx(ctx))
	return args.Get(0).(int64), args.Error(1)
}

// MockTweetRepository is a mock of the TweetRepository interface
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	args := m.Called(recordedCtx(ctx), tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Tweet, error) {
	args := m.Called(recordedCtx(ctx), id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListFeed(ctx context.Context, limit, offset int, viewerID uint) ([]*models.Tweet, error) {
	args := m.Called(recordedCtx(ctx), limit, offset, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListReplies(ctx context.Context, parentID uint, viewerID uint) ([]*models.Tweet, error) {
	args := m.Called(recordedCtx(ctx), parentID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListBookmarked(ctx context.Context, userID uint, limit, offset int) ([]*models.Tweet, error) {
	args := m.Called(recordedCtx(ctx), userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tweet), args.Error(1)
}

// MockEngagementRepository is a mock of the EngagementRepository interface
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) IsEngaged(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) (bool, error) {
	args := m.Called(recordedCtx(ctx), userID, tweetID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) Add(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error {
	args := m.Called(recordedCtx(ctx), userID, tweetID, kind)
	return args.Error(0)
}

func (m *MockEngagementRepository) Remove(ctx context.Context, userID, tweetID uint, kind models.EngagementKind) error {
	args := m.Called(recordedCtx(ctx), userID, tweetID, kind)
	return args.Error(0)
}

func (m *MockEngagementRepository) Count(ctx context.Context, tweetID uint, kind models.EngagementKind) (int, error) {
	args := m.Called(recordedCtx(ctx), tweetID, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockEngagementRepository) EngagedTweetIDs(ctx context.Context, userID uint, tweetIDs []uint) ([]models.Engagement, error) {
	args := m.Called(recordedCtx(ctx), userID, tweetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Engagement), args.Error(1)
}

// MockNotificationRepository is a mock of the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(recordedCtx(ctx), n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	args := m.Called(recordedCtx(ctx), id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error) {
	args := m.Called(recordedCtx(ctx), recipientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	args := m.Called(recordedCtx(ctx), recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	args := m.Called(recordedCtx(ctx), id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID uint) error {
	args := m.Called(recordedCtx(ctx), recipientID)
	return args.Error(0)
}
