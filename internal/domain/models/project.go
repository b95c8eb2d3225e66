// internal/domain/models/project.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a hosted project that contributions and feature
// suggestions are filed against. Projects are read-only in this
// application: they are seeded and maintained out of band, and
// OpenForge only displays them and attaches moderated child entities.
type Project struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"`

	Summary     string `bson:"summary,omitempty" json:"summary,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	// TechStack is stored as a single comma-separated string in legacy
	// documents; TechStackList splits it for display.
	TechStack string `bson:"tech_stack,omitempty" json:"tech_stack,omitempty"`

	RepoURL  string `bson:"repo_url,omitempty" json:"repo_url,omitempty"`
	SiteURL  string `bson:"site_url,omitempty" json:"site_url,omitempty"`
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`

	Status   string `bson:"status,omitempty" json:"status,omitempty"` // e.g. "Ongoing", "Completed"
	Role     string `bson:"role,omitempty" json:"role,omitempty"`
	TeamSize int    `bson:"team_size,omitempty" json:"team_size,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TechStackList returns the individual technologies, trimmed, from the
// comma-separated TechStack field.
func (p *Project) TechStackList() []string {
	if strings.TrimSpace(p.TechStack) == "" {
		return nil
	}
	parts := strings.Split(p.TechStack, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DisplayStatus returns the project status with the legacy default
// applied for documents written before the field existed.
func (p *Project) DisplayStatus() string {
	if p.Status == "" {
		return "Ongoing"
	}
	return p.Status
}
