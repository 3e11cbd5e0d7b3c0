package service

import (
	"context"
	"strings"
	"testing"

	"chronicle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(postRepo *postRepoStub, groupRepo *groupRepoStub) *PostService {
	return NewPostService(postRepo, groupRepo, noopCommentRepo(), disabledFeedCache())
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	svc := newPostService(noopPostRepo(), noopGroupRepo())

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \n\t  "},
		{name: "too long", text: strings.Repeat("a", maxTextLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), CreatePostInput{AuthorID: 1, Text: tt.text})
			assertValidationError(t, err)
		})
	}
}

func TestPostService_CreatePost_WithGroup(t *testing.T) {
	var created *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 42
		created = p
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		require.Equal(t, uint(42), id)
		return created, nil
	}
	groupRepo := noopGroupRepo()
	groupRepo.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
		if slug != "poetry" {
			return nil, models.NewNotFoundError("Group", slug)
		}
		return &models.Group{ID: 5, Slug: "poetry"}, nil
	}
	svc := newPostService(postRepo, groupRepo)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		AuthorID:  1,
		Text:      "evening lines",
		GroupSlug: "poetry",
	})
	require.NoError(t, err)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, uint(5), *post.GroupID)

	_, err = svc.CreatePost(context.Background(), CreatePostInput{
		AuthorID:  1,
		Text:      "evening lines",
		GroupSlug: "missing",
	})
	assertErrorCode(t, err, models.CodeNotFound)
}

func TestPostService_GetPostDetail(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Text: "hello", AuthorID: 7}, nil
	}
	postRepo.countByAuthorFn = func(_ context.Context, authorID uint) (int64, error) {
		assert.Equal(t, uint(7), authorID)
		return 12, nil
	}
	commentRepo := noopCommentRepo()
	commentRepo.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
		return []*models.Comment{{ID: 1, PostID: postID, Text: "nice"}}, nil
	}
	svc := NewPostService(postRepo, noopGroupRepo(), commentRepo, disabledFeedCache())

	detail, err := svc.GetPostDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), detail.Post.ID)
	assert.Len(t, detail.Comments, 1)
	assert.Equal(t, int64(12), detail.AuthorPostCount)
}

func TestPostService_UpdatePost_AuthorOnly(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Text: "original", AuthorID: 7}, nil
	}
	svc := newPostService(postRepo, noopGroupRepo())

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 8,
		PostID: 1,
		Text:   "rewritten",
	})
	assertErrorCode(t, err, models.CodeForbidden)

	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 7,
		PostID: 1,
		Text:   "rewritten",
	})
	require.NoError(t, err)
	assert.Equal(t, "rewritten", post.Text)
}

func TestPostService_UpdatePost_ClearsGroup(t *testing.T) {
	groupID := uint(5)
	updated := false
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Text: "original", AuthorID: 7, GroupID: &groupID}, nil
	}
	postRepo.updateFn = func(_ context.Context, p *models.Post) error {
		updated = true
		assert.Nil(t, p.GroupID, "omitting the slug detaches the post from its group")
		return nil
	}
	svc := newPostService(postRepo, noopGroupRepo())

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 7,
		PostID: 1,
		Text:   "rewritten",
	})
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestPostService_DeletePost_AuthorOnly(t *testing.T) {
	deleted := false
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 7}, nil
	}
	postRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := newPostService(postRepo, noopGroupRepo())

	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: 8, PostID: 1})
	assertErrorCode(t, err, models.CodeForbidden)
	assert.False(t, deleted)

	err = svc.DeletePost(context.Background(), DeletePostInput{UserID: 7, PostID: 1})
	require.NoError(t, err)
	assert.True(t, deleted)
}
