package server

import (
	"chirp/internal/config"
	"chirp/internal/repository"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// newTestServer wires a Server around mocked repositories. Repos a test
// does not touch may be nil.
func newTestServer(userRepo repository.UserRepository, tweetRepo repository.TweetRepository,
	engageRepo repository.EngagementRepository, notifRepo repository.NotificationRepository) *Server {

	cfg := &config.Config{JWTSecret: "test-secret", Env: "test"}

	notifier := service.NewNotificationService(notifRepo)
	return &Server{
		config:              cfg,
		userService:         service.NewUserService(userRepo),
		tweetService:        service.NewTweetService(tweetRepo, engageRepo, userRepo, notifier),
		engagementService:   service.NewEngagementService(engageRepo, tweetRepo, userRepo, notifier),
		notificationService: notifier,
	}
}

// asUser injects an authenticated identity the way AuthRequired does.
func asUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}
