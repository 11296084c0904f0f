package server

import (
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	result, err := s.toggle(c, models.EngagementLike)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	return c.JSON(fiber.Map{
		"liked":     result.Active,
		"likeCount": result.Count,
	})
}

// ToggleRetweet handles POST /api/posts/:id/retweet
func (s *Server) ToggleRetweet(c *fiber.Ctx) error {
	result, err := s.toggle(c, models.EngagementRetweet)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	return c.JSON(fiber.Map{
		"retweeted":    result.Active,
		"retweetCount": result.Count,
	})
}

// ToggleBookmark handles POST /api/posts/:id/bookmark
func (s *Server) ToggleBookmark(c *fiber.Ctx) error {
	result, err := s.toggle(c, models.EngagementBookmark)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	// Bookmarks are private, so the count stays server-side.
	return c.JSON(fiber.Map{
		"bookmarked": result.Active,
	})
}

// toggle runs the shared flip for all three engagement kinds. A nil
// result with nil error means the response is already written.
func (s *Server) toggle(c *fiber.Ctx, kind models.EngagementKind) (*models.ToggleResult, error) {
	userID := c.Locals("userID").(uint)

	tweetID, err := s.parseID(c, "id")
	if err != nil {
		return nil, nil
	}

	result, err := s.engagementService.Toggle(c.Context(), kind, tweetID, userID)
	if err != nil {
		return nil, respondServiceError(c, err)
	}

	return result, nil
}
