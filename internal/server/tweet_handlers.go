package server

import (
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateTweet handles POST /api/posts
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Body    string   `json:"body"`
		Content string   `json:"content"`
		Media   []string `json:"media"`
		ReplyTo *uint    `json:"replyTo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Body == "" {
		req.Body = req.Content
	}

	tweet, err := s.tweetService.CreateTweet(c.Context(), service.CreateTweetInput{
		UserID:    userID,
		Body:      req.Body,
		Media:     req.Media,
		ReplyToID: req.ReplyTo,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tweet)
}

// GetFeed handles GET /api/posts
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c)

	tweets, err := s.tweetService.ListFeed(c.Context(), p.Limit, p.Skip, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": tweets,
		"limit": p.Limit,
		"skip":  p.Skip,
	})
}

// GetTweet handles GET /api/posts/:id
func (s *Server) GetTweet(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tweet, err := s.tweetService.GetTweet(c.Context(), id, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(tweet)
}

// GetReplies handles GET /api/posts/:id/comments
func (s *Server) GetReplies(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.tweetService.ListReplies(c.Context(), id, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"replies": replies})
}

// CreateReply handles POST /api/posts/:id/comments
func (s *Server) CreateReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	parentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Body    string   `json:"body"`
		Content string   `json:"content"`
		Media   []string `json:"media"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Body == "" {
		req.Body = req.Content
	}

	reply, err := s.tweetService.CreateTweet(c.Context(), service.CreateTweetInput{
		UserID:    userID,
		Body:      req.Body,
		Media:     req.Media,
		ReplyToID: &parentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}

// GetBookmarks handles GET /api/bookmarks
func (s *Server) GetBookmarks(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c)

	tweets, err := s.tweetService.ListBookmarks(c.Context(), userID, p.Limit, p.Skip)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"bookmarks": tweets})
}
