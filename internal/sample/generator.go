// Package sample synthesizes the fallback dataset used when no usable
// external catalog source exists: a fixed catalog, a fixed user set, and
// randomized but bounded ratings.
package sample

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"recommender/database"
	"recommender/internal/models"
	"recommender/internal/repository"
)

// sampleCatalog is the versioned fallback catalog: identical on every run.
var sampleCatalog = []models.Item{
	{Title: "Naruto", Genre: strPtr("Action, Adventure"), Year: intPtr(2002), Description: strPtr("Young ninja seeks to become Hokage")},
	{Title: "Attack on Titan", Genre: strPtr("Action, Drama"), Year: intPtr(2013), Description: strPtr("Humans fight against titans")},
	{Title: "Death Note", Genre: strPtr("Mystery, Thriller"), Year: intPtr(2006), Description: strPtr("Book that kills by writing names")},
	{Title: "My Hero Academia", Genre: strPtr("Action, Superheroes"), Year: intPtr(2016), Description: strPtr("Young man without powers in a world of heroes")},
	{Title: "Demon Slayer", Genre: strPtr("Action, Fantasy"), Year: intPtr(2019), Description: strPtr("Young Demon Hunter")},
}

// sampleUsers are the fixed fallback users. The external source never
// defines users, so these are synthesized on both population paths.
var sampleUsers = []string{
	"Example user 1",
	"Example user 2",
	"Example user 3",
}

const (
	maxRatingsPerUser = 5
	ratingMin         = 3.0
	ratingMax         = 5.0
)

// Generator synthesizes fallback sample data. The random source is injected
// through the seed so test runs are reproducible; the bounded rating range
// and per-user subset size are documented behavior, not incidental.
type Generator struct {
	store  *database.Store
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates a generator over the given store. A zero seed falls
// back to the clock.
func NewGenerator(store *database.Store, seed int64, logger *slog.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		store:  store,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// CreateCatalog inserts the fixed sample catalog. Inserts are
// skip-on-conflict against the item natural key, so a second run leaves the
// catalog unchanged. Returns the number of rows actually written.
func (g *Generator) CreateCatalog(ctx context.Context) (int, error) {
	db, err := g.store.DB()
	if err != nil {
		return 0, fmt.Errorf("could not initialize store: %w", err)
	}

	items := repository.NewItemRepository(db.WithContext(ctx))
	created := 0
	for _, item := range sampleCatalog {
		inserted, err := items.Insert(&item)
		if err != nil {
			return created, fmt.Errorf("inserting sample item %q: %w", item.Title, err)
		}
		if inserted {
			created++
		}
	}

	g.logger.Info("sample catalog created", "items", created)
	return created, nil
}

// CreateUsers inserts the fixed sample users, skipping names that already
// exist. Returns the number of rows actually written.
func (g *Generator) CreateUsers(ctx context.Context) (int, error) {
	db, err := g.store.DB()
	if err != nil {
		return 0, fmt.Errorf("could not initialize store: %w", err)
	}

	users := repository.NewUserRepository(db.WithContext(ctx))
	created := 0
	for _, name := range sampleUsers {
		inserted, err := users.Insert(&models.User{Name: name})
		if err != nil {
			return created, fmt.Errorf("inserting sample user %q: %w", name, err)
		}
		if inserted {
			created++
		}
	}

	g.logger.Info("sample users created", "users", created)
	return created, nil
}

// CreateRatings reads back every persisted user and item id and, for each
// user, rates a random subset of at most maxRatingsPerUser items without
// replacement, each value uniform in [3.0, 5.0] rounded to one decimal.
// The mostly-positive bound gives downstream recommendation logic a
// plausible signal without a real distribution.
//
// Zero users or zero items is a reported no-op, not an error.
func (g *Generator) CreateRatings(ctx context.Context) (int, error) {
	db, err := g.store.DB()
	if err != nil {
		return 0, fmt.Errorf("could not initialize store: %w", err)
	}
	db = db.WithContext(ctx)

	userIDs, err := repository.NewUserRepository(db).IDs()
	if err != nil {
		return 0, fmt.Errorf("listing user ids: %w", err)
	}
	itemIDs, err := repository.NewItemRepository(db).IDs()
	if err != nil {
		return 0, fmt.Errorf("listing item ids: %w", err)
	}

	if len(userIDs) == 0 || len(itemIDs) == 0 {
		g.logger.Info("not enough data to create sample ratings",
			"users", len(userIDs), "items", len(itemIDs))
		return 0, nil
	}

	ratings := repository.NewRatingRepository(db)
	created := 0
	perUser := min(maxRatingsPerUser, len(itemIDs))

	for _, userID := range userIDs {
		for _, idx := range g.rng.Perm(len(itemIDs))[:perUser] {
			value := math.Round((ratingMin+g.rng.Float64()*(ratingMax-ratingMin))*10) / 10

			inserted, err := ratings.Insert(&models.Rating{
				UserID: userID,
				ItemID: itemIDs[idx],
				Rating: value,
			})
			if err != nil {
				return created, fmt.Errorf("inserting rating (user %d, item %d): %w", userID, itemIDs[idx], err)
			}
			if inserted {
				created++
			}
		}
	}

	g.logger.Info("sample ratings created", "ratings", created)
	return created, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
