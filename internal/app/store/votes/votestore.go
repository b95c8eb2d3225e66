// internal/app/store/votes/votestore.go
package votestore

import (
	"context"
	"time"

	"github.com/openforgehq/openforge/internal/domain/models"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("votes")}
}

// Add records a vote by user for idea. The composite _id makes this an
// idempotent upsert: voting twice leaves exactly one document and the
// original created_at.
func (s *Store) Add(ctx context.Context, ideaID primitive.ObjectID, userID string) error {
	id := models.VoteID(ideaID, userID)
	_, err := s.c.UpdateByID(ctx, id,
		bson.M{
			"$set": bson.M{
				"idea_id": ideaID,
				"user_id": userID,
			},
			"$setOnInsert": bson.M{
				"created_at": time.Now().UTC(),
			},
		},
		options.Update().SetUpsert(true))
	if wafflemongo.IsDup(err) {
		// Two concurrent upserts raced on the insert; the vote exists,
		// which is all the caller asked for.
		return nil
	}
	return err
}

// Remove deletes the user's vote for the idea. Removing a vote that
// does not exist is not an error.
func (s *Store) Remove(ctx context.Context, ideaID primitive.ObjectID, userID string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": models.VoteID(ideaID, userID)})
	return err
}

// HasVoted reports whether the user has a vote on the idea.
func (s *Store) HasVoted(ctx context.Context, ideaID primitive.ObjectID, userID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": models.VoteID(ideaID, userID)}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of votes on an idea.
func (s *Store) Count(ctx context.Context, ideaID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"idea_id": ideaID})
}

// CountByIdeas returns vote counts for a batch of ideas in one
// aggregation. Ideas with no votes are absent from the map.
func (s *Store) CountByIdeas(ctx context.Context, ideaIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"idea_id": bson.M{"$in": ideaIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$idea_id", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		IdeaID primitive.ObjectID `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.IdeaID] = row.Count
	}
	return counts, nil
}

// ListByUser returns the idea ids the user has voted for.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"idea_id": 1})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		IdeaID primitive.ObjectID `bson:"idea_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.IdeaID
	}
	return ids, nil
}

// DeleteByIdea removes all votes for an idea. Called when an admin
// deletes the idea so vote documents never outlive their idea.
func (s *Store) DeleteByIdea(ctx context.Context, ideaID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"idea_id": ideaID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteOrphaned removes votes whose idea_id is not in keep. Safety
// valve for votes left behind before cascade deletion existed; runs
// from the background sweep job.
func (s *Store) DeleteOrphaned(ctx context.Context, keep []primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"idea_id": bson.M{"$nin": keep}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
