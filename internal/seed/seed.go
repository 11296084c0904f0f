// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"chirp/internal/models"
)

// Seeder populates the database with generated users, tweets, and
// engagement activity.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll wipes every seeded table, children first.
func (s *Seeder) ClearAll() error {
	tables := []string{"notifications", "engagements", "tweet_media", "tweets", "follows", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// SeedUsers creates n users, all with the password "password123".
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		user := &models.User{
			Name:     name,
			Email:    strings.ToLower(gofakeit.Email()),
			Password: string(hashed),
			Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
			Bio:      gofakeit.Sentence(8),
			Provider: models.ProviderCredentials,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users", len(users))
	return users, nil
}

// SeedTweets creates n top-level tweets plus a spread of replies.
func (s *Seeder) SeedTweets(users []*models.User, n int) ([]*models.Tweet, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to tweet as")
	}

	tweets := make([]*models.Tweet, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		tweet := &models.Tweet{
			Body:      truncateTweet(gofakeit.Sentence(s.rng.Intn(20) + 3)),
			UserID:    author.ID,
			CreatedAt: s.pastTime(30),
		}
		if err := s.db.Create(tweet).Error; err != nil {
			return nil, fmt.Errorf("creating tweet %d: %w", i, err)
		}
		tweets = append(tweets, tweet)
	}

	// Roughly a third of the tweets attract a reply.
	for _, parent := range tweets {
		if s.rng.Intn(3) != 0 {
			continue
		}
		author := users[s.rng.Intn(len(users))]
		reply := &models.Tweet{
			Body:      truncateTweet(gofakeit.Sentence(s.rng.Intn(12) + 2)),
			UserID:    author.ID,
			ReplyToID: &parent.ID,
			CreatedAt: parent.CreatedAt.Add(time.Duration(s.rng.Intn(120)+1) * time.Minute),
		}
		if err := s.db.Create(reply).Error; err != nil {
			return nil, fmt.Errorf("creating reply: %w", err)
		}
	}

	log.Printf("Seeded %d tweets", len(tweets))
	return tweets, nil
}

// SeedEngagements spreads likes, retweets, and bookmarks across the
// given tweets, with like/retweet notifications to match.
func (s *Seeder) SeedEngagements(users []*models.User, tweets []*models.Tweet) error {
	kinds := []models.EngagementKind{
		models.EngagementLike,
		models.EngagementRetweet,
		models.EngagementBookmark,
	}

	count := 0
	for _, tweet := range tweets {
		for _, user := range users {
			for _, kind := range kinds {
				if s.rng.Intn(6) != 0 {
					continue
				}

				e := &models.Engagement{UserID: user.ID, TweetID: tweet.ID, Kind: kind}
				if err := s.db.Create(e).Error; err != nil {
					return fmt.Errorf("creating engagement: %w", err)
				}
				count++

				if kind == models.EngagementBookmark || tweet.UserID == user.ID {
					continue
				}

				verb := "liked"
				typ := models.NotificationLike
				if kind == models.EngagementRetweet {
					verb = "retweeted"
					typ = models.NotificationRetweet
				}
				n := &models.Notification{
					RecipientID: tweet.UserID,
					SenderID:    user.ID,
					TweetID:     tweet.ID,
					Type:        typ,
					Message:     fmt.Sprintf("%s your tweet: %q", verb, truncateTweet(tweet.Body)),
					Read:        s.rng.Intn(2) == 0,
				}
				if err := s.db.Create(n).Error; err != nil {
					return fmt.Errorf("creating notification: %w", err)
				}
			}
		}
	}

	log.Printf("Seeded %d engagements", count)
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.rng.Intn(maxDays)
	hoursBack := s.rng.Intn(24)
	minsBack := s.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

func truncateTweet(body string) string {
	runes := []rune(body)
	if len(runes) <= models.MaxTweetLen {
		return body
	}
	return string(runes[:models.MaxTweetLen])
}
