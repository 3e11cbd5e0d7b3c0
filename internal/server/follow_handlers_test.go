package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chronicle/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func followState(t *testing.T, resp *http.Response) bool {
	t.Helper()
	var body struct {
		Following bool `json:"following"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Following
}

func TestFollowUser(t *testing.T) {
	app := fiber.New()
	s, deps := newTestServer()
	app.Use(authAs(3))
	app.Post("/users/:username/follow", s.FollowUser)

	deps.userRepo.On("GetByUsername", mock.Anything, "leo").
		Return(&models.User{ID: 7, Username: "leo"}, nil)
	deps.userRepo.On("GetByUsername", mock.Anything, "nobody").
		Return(nil, models.NewNotFoundError("User", "nobody"))
	deps.followRepo.On("Follow", mock.Anything, uint(3), uint(7)).Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/users/leo/follow", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, followState(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/users/nobody/follow", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFollowUser_Self(t *testing.T) {
	app := fiber.New()
	s, deps := newTestServer()
	app.Use(authAs(7))
	app.Post("/users/:username/follow", s.FollowUser)

	deps.userRepo.On("GetByUsername", mock.Anything, "leo").
		Return(&models.User{ID: 7, Username: "leo"}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/users/leo/follow", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, followState(t, resp))
	deps.followRepo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnfollowUser(t *testing.T) {
	app := fiber.New()
	s, deps := newTestServer()
	app.Use(authAs(3))
	app.Delete("/users/:username/follow", s.UnfollowUser)

	deps.userRepo.On("GetByUsername", mock.Anything, "leo").
		Return(&models.User{ID: 7, Username: "leo"}, nil)
	deps.followRepo.On("Unfollow", mock.Anything, uint(3), uint(7)).Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/leo/follow", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, followState(t, resp))
}

func TestGetFollowStatus(t *testing.T) {
	app := fiber.New()
	s, deps := newTestServer()
	app.Use(authAs(3))
	app.Get("/users/:username/follow", s.GetFollowStatus)

	deps.userRepo.On("GetByUsername", mock.Anything, "leo").
		Return(&models.User{ID: 7, Username: "leo"}, nil)
	deps.followRepo.On("Exists", mock.Anything, uint(3), uint(7)).Return(true, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/leo/follow", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, followState(t, resp))
}
