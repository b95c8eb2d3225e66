// internal/domain/models/feature.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectFeature is a suggested enhancement scoped to a specific
// project. It carries the same moderation lifecycle as ideas and
// contributions: created pending, shown on the project page only once
// approved.
type ProjectFeature struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"`

	Description string `bson:"description" json:"description"`
	Rationale   string `bson:"rationale,omitempty" json:"rationale,omitempty"`

	Submitter Submitter `bson:"submitter" json:"submitter"`

	ProjectID   primitive.ObjectID `bson:"project_id" json:"project_id"`
	ProjectName string             `bson:"project_name" json:"project_name"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
