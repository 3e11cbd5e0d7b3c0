package service

import (
	"context"

	"chronicle/internal/cache"
	"chronicle/internal/models"
	"chronicle/internal/pagination"
	"chronicle/internal/repository"
)

// PageSize is the fixed window size for every listing.
const PageSize = 10

// FeedService composes the paginated listings: the global feed, a group's
// feed, an author's feed and the viewer's personal (following) feed. Only the
// global feed is cached; the others are viewer- or scope-specific and cheap
// enough to compute per request.
type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	feedCache  *cache.FeedCache
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	feedCache *cache.FeedCache,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		feedCache:  feedCache,
	}
}

type GroupFeedInput struct {
	Slug string
	Page int
}

type AuthorFeedInput struct {
	Username string
	ViewerID uint
	Page     int
}

// FeedPage is a page of posts plus the scope header the listing renders
// alongside it. Group is set for group feeds; Author, PostCount and Following
// for author feeds.
type FeedPage struct {
	pagination.Page[*models.Post]
	Group     *models.Group `json:"group,omitempty"`
	Author    *models.User  `json:"author,omitempty"`
	PostCount int64         `json:"post_count,omitempty"`
	Following bool          `json:"following,omitempty"`
}

// GlobalFeed returns a page of the sitewide feed, served through the
// time-boxed cache snapshot.
func (s *FeedService) GlobalFeed(ctx context.Context, page int) (*FeedPage, error) {
	var posts []*models.Post
	err := s.feedCache.Aside(ctx, &posts, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.ListAll(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return &FeedPage{Page: pagination.Paginate(posts, PageSize, page)}, nil
}

// GroupFeed returns a page of a group's posts. An unknown slug is a not-found
// error, never an empty page.
func (s *FeedService) GroupFeed(ctx context.Context, in GroupFeedInput) (*FeedPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return &FeedPage{
		Page:  pagination.Paginate(posts, PageSize, in.Page),
		Group: group,
	}, nil
}

// AuthorFeed returns a page of one author's posts along with their total post
// count and, when a viewer is present, whether the viewer follows them.
func (s *FeedService) AuthorFeed(ctx context.Context, in AuthorFeedInput) (*FeedPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.Author = *author
	}

	out := &FeedPage{
		Page:      pagination.Paginate(posts, PageSize, in.Page),
		Author:    author,
		PostCount: count,
	}
	if in.ViewerID != 0 && in.ViewerID != author.ID {
		following, err := s.followRepo.Exists(ctx, in.ViewerID, author.ID)
		if err != nil {
			return nil, err
		}
		out.Following = following
	}
	return out, nil
}

// FollowingFeed returns a page of posts by the authors the viewer follows.
// A viewer who follows nobody gets one empty page, not an error.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uint, page int) (*FeedPage, error) {
	if viewerID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}
	ids, err := s.followRepo.FolloweeIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &FeedPage{Page: pagination.Paginate(posts, PageSize, page)}, nil
}
