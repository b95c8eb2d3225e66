// internal/domain/models/idea.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Idea is a community-submitted project proposal awaiting moderation.
//
// Ideas are created through the public submission form with status
// "pending" and become publicly visible only once an admin approves
// them. Vote documents reference ideas by ID; the vote count is always
// computed by counting matching documents, never stored on the idea.
type Idea struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped

	Problem     string `bson:"problem" json:"problem"`
	Solution    string `bson:"solution" json:"solution"`
	Category    string `bson:"category" json:"category"`
	Difficulty  string `bson:"difficulty" json:"difficulty"`
	LookingFor  string `bson:"looking_for" json:"looking_for"`
	HelpContext string `bson:"help_context,omitempty" json:"help_context,omitempty"`
	LeadProject bool   `bson:"lead_project" json:"lead_project"`

	Submitter Submitter `bson:"submitter" json:"submitter"`

	Status string `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Submitter holds the contact fields collected with every submission.
// LinkedIn and mobile are optional on all forms.
type Submitter struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	GitHub   string `bson:"github" json:"github"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Mobile   string `bson:"mobile,omitempty" json:"mobile,omitempty"`
}
