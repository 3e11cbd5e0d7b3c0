// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	_ "embed"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"chronicle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed fixtures.yml
var fixturesYAML []byte

type groupFixture struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type fixtures struct {
	Groups []groupFixture `yaml:"groups"`
}

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
	// runLabel and userSeq tag every seeded username so repeated runs never
	// collide on the unique index.
	runLabel string
	userSeq  int
}

func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:       db,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		runLabel: uuid.NewString()[:8],
	}
}

// Seed populates the database with demo groups, users, posts, comments and
// follow edges.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	groups, err := s.seedGroups()
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("%d groups available", len(groups))

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	posts, err := s.seedPosts(users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := s.seedComments(users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	if err := s.seedFollows(users); err != nil {
		return fmt.Errorf("failed to create follow edges: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

// ClearAll removes all seeded content in FK order.
func (s *Seeder) ClearAll() error {
	tables := []string{"comments", "follows", "posts", "users", "groups"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// seedGroups upserts the fixture groups by slug, so re-running the seeder
// keeps a stable set of groups.
func (s *Seeder) seedGroups() ([]models.Group, error) {
	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		return nil, fmt.Errorf("parsing group fixtures: %w", err)
	}

	groups := make([]models.Group, 0, len(fx.Groups))
	for _, g := range fx.Groups {
		group := models.Group{
			Title:       g.Title,
			Slug:        g.Slug,
			Description: g.Description,
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&group).Error
		if err != nil {
			return nil, err
		}
		if group.ID == 0 {
			if err := s.db.Where("slug = ?", g.Slug).First(&group).Error; err != nil {
				return nil, err
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		s.userSeq++
		user := &models.User{
			Username:    fmt.Sprintf("%s-%s-%d", strings.ToLower(gofakeit.Username()), s.runLabel, s.userSeq),
			DisplayName: gofakeit.Name(),
		}
		users = append(users, user)
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User, groups []models.Group, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := &models.Post{
			Text:     gofakeit.Paragraph(1, 3, 12, "\n"),
			AuthorID: author.ID,
			// spread creation over the last 90 days so feed pages look lived-in
			CreatedAt: time.Now().Add(-time.Duration(s.rng.Intn(90*24)) * time.Hour),
		}
		// roughly a third of posts carry an image, two thirds sit in a group
		if s.rng.Intn(3) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", uuid.NewString())
		}
		if len(groups) > 0 && s.rng.Intn(3) != 0 {
			post.GroupID = &groups[s.rng.Intn(len(groups))].ID
		}
		posts = append(posts, post)
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Seeder) seedComments(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}
	var comments []*models.Comment
	for _, post := range posts {
		for i := 0; i < s.rng.Intn(4); i++ {
			comments = append(comments, &models.Comment{
				Text:      gofakeit.Sentence(s.rng.Intn(12) + 3),
				PostID:    post.ID,
				AuthorID:  users[s.rng.Intn(len(users))].ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(i+1) * time.Hour),
			})
		}
	}
	if len(comments) == 0 {
		return nil
	}
	return s.db.Create(&comments).Error
}

// seedFollows gives every user a handful of followees. Self-edges are skipped
// and duplicates land on the unique index, same as production writes.
func (s *Seeder) seedFollows(users []*models.User) error {
	for _, follower := range users {
		for i := 0; i < s.rng.Intn(6); i++ {
			followee := users[s.rng.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			follow := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
