// internal/app/store/features/featurestore.go
package featurestore

import (
	"context"
	"errors"
	"time"

	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("feature suggestion not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("project_features")}
}

// Create inserts a new feature suggestion as pending.
func (s *Store) Create(ctx context.Context, f models.ProjectFeature) (models.ProjectFeature, error) {
	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.TitleCI = text.Fold(f.Title)
	f.Status = string(moderation.Pending)
	f.CreatedAt = now
	f.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.ProjectFeature{}, err
	}
	return f, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ProjectFeature, error) {
	var f models.ProjectFeature
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ProjectFeature{}, ErrNotFound
		}
		return models.ProjectFeature{}, err
	}
	return f, nil
}

// List returns feature suggestions newest first, optionally filtered
// by status server-side.
func (s *Store) List(ctx context.Context, status moderation.Status) ([]models.ProjectFeature, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var feats []models.ProjectFeature
	if err := cur.All(ctx, &feats); err != nil {
		return nil, err
	}
	return feats, nil
}

// ListByProject returns a project's feature suggestions with the given
// status, newest first.
func (s *Store) ListByProject(ctx context.Context, projectID primitive.ObjectID, status moderation.Status) ([]models.ProjectFeature, error) {
	filter := bson.M{"project_id": projectID}
	if status != "" {
		filter["status"] = string(status)
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var feats []models.ProjectFeature
	if err := cur.All(ctx, &feats); err != nil {
		return nil, err
	}
	return feats, nil
}

// SetStatus applies the moderation state machine to one suggestion.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, to moderation.Status) error {
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	changed, err := moderation.Transition(moderation.Status(f.Status), to)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	_, err = s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// Delete removes a feature suggestion by ID. Returns the number deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of suggestions with the given status, or
// all when status is empty.
func (s *Store) Count(ctx context.Context, status moderation.Status) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	return s.c.CountDocuments(ctx, filter)
}
