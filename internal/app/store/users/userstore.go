// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/openforgehq/openforge/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// EnsureUser upserts the account record after a successful external
// sign-in. The document _id is the provider's user id, so repeated
// sign-ins land on the same document: profile fields and role are
// refreshed every time, created_at only on first insert.
func (s *Store) EnsureUser(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()
	u.LastLoginAt = now

	_, err := s.c.UpdateByID(ctx, u.ID,
		bson.M{
			"$set": bson.M{
				"name":          u.Name,
				"email":         u.Email,
				"github":        u.GitHub,
				"linkedin":      u.LinkedIn,
				"role":          u.Role,
				"last_login_at": u.LastLoginAt,
			},
			"$setOnInsert": bson.M{
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return models.User{}, err
	}
	return s.GetByID(ctx, u.ID)
}

func (s *Store) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
