// internal/domain/models/vote.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote records that one user has voted for one idea.
//
// The document _id is the composite "<ideaID>_<userID>", so a repeated
// vote by the same user is an upsert onto the same document. Existence
// of the document is the sole source of truth for "has voted"; counts
// are computed with CountDocuments on idea_id.
type Vote struct {
	ID        string             `bson:"_id" json:"id"`
	IdeaID    primitive.ObjectID `bson:"idea_id" json:"idea_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// VoteID builds the composite vote document id.
func VoteID(ideaID primitive.ObjectID, userID string) string {
	return ideaID.Hex() + "_" + userID
}
