// internal/app/store/ideas/ideastore.go
package ideastore

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

var ErrNotFound = errors.New("idea not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ideas")}
}

// Create inserts a new idea. Status is always forced to pending and
// timestamps are set here regardless of what the caller passed in.
func (s *Store) Create(ctx context.Context, idea models.Idea) (models.Idea, error) {
	now := time.Now().UTC()
	idea.ID = primitive.NewObjectID()
	idea.TitleCI = text.Fold(idea.Title)
	idea.Status = string(moderation.Pending)
	idea.CreatedAt = now
	idea.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, idea); err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Idea, error) {
	var idea models.Idea
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&idea); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Idea{}, ErrNotFound
		}
		return models.Idea{}, err
	}
	return idea, nil
}

// List returns ideas newest first. An empty status returns every idea;
// otherwise the filter is applied server-side.
func (s *Store) List(ctx context.Context, status moderation.Status) ([]models.Idea, error) {
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

	var ideas []models.Idea
	if err := cur.All(ctx, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// SetStatus moves an idea through the moderation state machine.
// Unknown ids return ErrNotFound; illegal moves (approving a rejected
// idea, say) return moderation.ErrIllegalTransition. Re-applying the
// current status is a no-op, not an error.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, to moderation.Status) error {
	idea, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	changed, err := moderation.Transition(moderation.Status(idea.Status), to)
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

// Delete removes an idea by ID. Returns the number of documents
// deleted (0 or 1); deleting a missing idea is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of ideas with the given status, or all
// ideas when status is empty.
func (s *Store) Count(ctx context.Context, status moderation.Status) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	return s.c.CountDocuments(ctx, filter)
}

// ListIDs returns the ids of every idea. Used by the orphaned-vote
// sweep to know which idea_id values are still live.
func (s *Store) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}
