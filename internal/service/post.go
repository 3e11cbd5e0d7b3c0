package service

import (
	"context"
	"log/slog"
	"strings"

	"chronicle/internal/cache"
	"chronicle/internal/middleware"
	"chronicle/internal/models"
	"chronicle/internal/repository"
)

const maxTextLen = 50000

// PostService owns the post lifecycle. It is the one place feed cache
// invalidation happens, so the policy in FeedCache sees every write.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	commentRepo repository.CommentRepository
	feedCache   *cache.FeedCache
}

type CreatePostInput struct {
	AuthorID  uint
	Text      string
	ImageURL  string
	GroupSlug string
}

type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      string
	ImageURL  string
	GroupSlug string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// PostDetail is a post with its conversation and the author's total output.
type PostDetail struct {
	Post            *models.Post      `json:"post"`
	Comments        []*models.Comment `json:"comments"`
	AuthorPostCount int64             `json:"author_post_count"`
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	commentRepo repository.CommentRepository,
	feedCache *cache.FeedCache,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		feedCache:   feedCache,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxTextLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}

	post := &models.Post{
		Text:     in.Text,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
	}
	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = &group.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	middleware.Logger.InfoContext(ctx, "post created",
		slog.Uint64("post_id", uint64(post.ID)),
		slog.String("label", post.Label()))
	s.feedCache.OnPostCreated(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPostDetail loads a post with its comments and the author's post count.
func (s *PostService) GetPostDetail(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.postRepo.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		Post:            post,
		Comments:        comments,
		AuthorPostCount: count,
	}, nil
}

// UpdatePost rewrites a post's text, image or group. Only the author may
// edit; anyone else gets a forbidden error the handler turns into a redirect
// to the detail view.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxTextLen {
		return nil, models.NewValidationError("Text too long (max 50000 characters)")
	}

	post.Text = in.Text
	post.ImageURL = in.ImageURL
	post.GroupID = nil
	post.Group = nil
	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = &group.ID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.AuthorID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return err
	}
	s.feedCache.OnPostDeleted(ctx)
	return nil
}
