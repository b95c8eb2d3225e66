package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/openforgehq/openforge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// TestSubmitter returns contact fields for test submissions.
func TestSubmitter() models.Submitter {
	return models.Submitter{
		Name:   "Test Submitter",
		Email:  "submitter@test.com",
		GitHub: "testsubmitter",
	}
}

// CreateProject inserts a project with the given title.
func (f *Fixtures) CreateProject(ctx context.Context, title string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Summary:   "Test project summary",
		TechStack: "Go, MongoDB",
		Status:    "Ongoing",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}

// CreateIdea inserts an idea with the given title and status.
func (f *Fixtures) CreateIdea(ctx context.Context, title, status string) models.Idea {
	f.t.Helper()

	now := time.Now().UTC()
	idea := models.Idea{
		ID:         primitive.NewObjectID(),
		Title:      title,
		TitleCI:    text.Fold(title),
		Problem:    "Test problem statement",
		Solution:   "Test solution outline",
		Category:   "Tooling",
		Difficulty: "Intermediate",
		Submitter:  TestSubmitter(),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("ideas").InsertOne(ctx, idea); err != nil {
		f.t.Fatalf("failed to create test idea: %v", err)
	}
	return idea
}

// CreateContribution inserts a contribution against the given project.
func (f *Fixtures) CreateContribution(ctx context.Context, project models.Project, title, status string) models.ProjectContribution {
	f.t.Helper()

	now := time.Now().UTC()
	con := models.ProjectContribution{
		ID:               primitive.NewObjectID(),
		Title:            title,
		TitleCI:          text.Fold(title),
		Description:      "Test contribution description",
		ContributionType: "Bug Fix",
		PRLink:           "https://github.com/acme/widgets/pull/42",
		Submitter:        TestSubmitter(),
		ProjectID:        project.ID,
		ProjectName:      project.Title,
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := f.db.Collection("project_contributions").InsertOne(ctx, con); err != nil {
		f.t.Fatalf("failed to create test contribution: %v", err)
	}
	return con
}

// CreateFeature inserts a feature suggestion against the given project.
func (f *Fixtures) CreateFeature(ctx context.Context, project models.Project, title, status string) models.ProjectFeature {
	f.t.Helper()

	now := time.Now().UTC()
	feat := models.ProjectFeature{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test feature description",
		Submitter:   TestSubmitter(),
		ProjectID:   project.ID,
		ProjectName: project.Title,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("project_features").InsertOne(ctx, feat); err != nil {
		f.t.Fatalf("failed to create test feature: %v", err)
	}
	return feat
}

// CreateUser inserts a user keyed by the given external id.
func (f *Fixtures) CreateUser(ctx context.Context, id, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:          id,
		Name:        "Test User",
		Email:       email,
		Role:        role,
		CreatedAt:   now,
		LastLoginAt: now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateVote inserts a vote by userID on the given idea.
func (f *Fixtures) CreateVote(ctx context.Context, ideaID primitive.ObjectID, userID string) models.Vote {
	f.t.Helper()

	v := models.Vote{
		ID:        models.VoteID(ideaID, userID),
		IdeaID:    ideaID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("votes").InsertOne(ctx, v); err != nil {
		f.t.Fatalf("failed to create test vote: %v", err)
	}
	return v
}
