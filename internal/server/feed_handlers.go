package server

import (
	"chronicle/internal/models"
	"chronicle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := s.feedService.GlobalFeed(c.Context(), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetFollowingFeed handles GET /api/feed/following
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	page, err := s.feedService.FollowingFeed(c.Context(), viewerID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(groups)
}

// GetGroupFeed handles GET /api/groups/:slug/posts
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	page, err := s.feedService.GroupFeed(c.Context(), service.GroupFeedInput{
		Slug: c.Params("slug"),
		Page: parsePage(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetAuthorFeed handles GET /api/users/:username/posts
func (s *Server) GetAuthorFeed(c *fiber.Ctx) error {
	page, err := s.feedService.AuthorFeed(c.Context(), service.AuthorFeedInput{
		Username: c.Params("username"),
		ViewerID: viewerID(c),
		Page:     parsePage(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}
