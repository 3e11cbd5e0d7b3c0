package service

import (
	"context"

	"chronicle/internal/repository"
)

// FollowService manages the directed follow graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes the viewer follow the named author. A self-follow is a silent
// no-op and a repeated follow changes nothing; both report the resulting
// state rather than an error.
func (s *FollowService) Follow(ctx context.Context, viewerID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author.ID == viewerID {
		return false, nil
	}
	if err := s.followRepo.Follow(ctx, viewerID, author.ID); err != nil {
		return false, err
	}
	return true, nil
}

// Unfollow removes the edge if present; removing an absent edge succeeds.
func (s *FollowService) Unfollow(ctx context.Context, viewerID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author.ID == viewerID {
		return false, nil
	}
	if err := s.followRepo.Unfollow(ctx, viewerID, author.ID); err != nil {
		return false, err
	}
	return false, nil
}

// Status reports whether the viewer currently follows the named author.
func (s *FollowService) Status(ctx context.Context, viewerID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author.ID == viewerID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, viewerID, author.ID)
}
