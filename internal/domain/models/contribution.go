// internal/domain/models/contribution.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectContribution is a submitted pull request against an existing
// project, awaiting moderation.
//
// ProjectName is a denormalized copy of the project title taken at
// submission time so admin and public lists never need a join; it is
// not updated if the project is later renamed.
type ProjectContribution struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"`

	Description      string `bson:"description" json:"description"`
	ContributionType string `bson:"contribution_type" json:"contribution_type"` // Feature | Bug Fix | Enhancement | Documentation | Refactor
	ExperienceLevel  string `bson:"experience_level" json:"experience_level"`
	Timeline         string `bson:"timeline" json:"timeline"`
	HowCanHelp       string `bson:"how_can_help" json:"how_can_help"`
	PRLink           string `bson:"pr_link" json:"pr_link"`

	Submitter Submitter `bson:"submitter" json:"submitter"`

	ProjectID   primitive.ObjectID `bson:"project_id" json:"project_id"`
	ProjectName string             `bson:"project_name" json:"project_name"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
