// internal/app/store/contributions/contributionstore.go
package contributionstore

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

var ErrNotFound = errors.New("contribution not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("project_contributions")}
}

// Create inserts a new contribution as pending. The caller is expected
// to have validated the PR link and denormalized the project name
// already.
func (s *Store) Create(ctx context.Context, con models.ProjectContribution) (models.ProjectContribution, error) {
	now := time.Now().UTC()
	con.ID = primitive.NewObjectID()
	con.TitleCI = text.Fold(con.Title)
	con.Status = string(moderation.Pending)
	con.CreatedAt = now
	con.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, con); err != nil {
		return models.ProjectContribution{}, err
	}
	return con, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ProjectContribution, error) {
	var con models.ProjectContribution
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&con); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ProjectContribution{}, ErrNotFound
		}
		return models.ProjectContribution{}, err
	}
	return con, nil
}

// List returns contributions newest first, optionally filtered by
// status server-side.
func (s *Store) List(ctx context.Context, status moderation.Status) ([]models.ProjectContribution, error) {
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

	var cons []models.ProjectContribution
	if err := cur.All(ctx, &cons); err != nil {
		return nil, err
	}
	return cons, nil
}

// ListByProject returns a project's contributions with the given
// status, newest first. Used by the project detail page with
// moderation.Approved.
func (s *Store) ListByProject(ctx context.Context, projectID primitive.ObjectID, status moderation.Status) ([]models.ProjectContribution, error) {
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

	var cons []models.ProjectContribution
	if err := cur.All(ctx, &cons); err != nil {
		return nil, err
	}
	return cons, nil
}

// SetStatus applies the moderation state machine to one contribution.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, to moderation.Status) error {
	con, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	changed, err := moderation.Transition(moderation.Status(con.Status), to)
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

// Delete removes a contribution by ID. Returns the number deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of contributions with the given status, or
// all when status is empty.
func (s *Store) Count(ctx context.Context, status moderation.Status) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	return s.c.CountDocuments(ctx, filter)
}
