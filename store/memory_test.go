package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
)

func seedIssue(t *testing.T, s *Store, title string, category models.IssueCategory, state, city *string) models.Issue {
	t.Helper()
	issue := models.Issue{
		Title:       title,
		Summary:     "summary",
		Description: "description",
		Category:    category,
		Scope:       models.ScopeLocal,
		ImpactScore: models.ImpactScore(category, models.ScopeLocal),
		Status:      models.Active,
		State:       state,
		City:        city,
		CreatedAt:   time.Now(),
		LastUpdated: time.Now(),
	}
	require.NoError(t, s.Issues.Create(context.Background(), &issue))
	return issue
}

func TestFindMatchPrefersEarliestInsertion(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	first := seedIssue(t, s, "Power cuts in summer", models.Infrastructure, nil, nil)
	seedIssue(t, s, "Power cuts hurting shops", models.Infrastructure, nil, nil)

	match, err := s.Issues.FindMatch(ctx, "irrelevant", models.Infrastructure, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, first.ID, match.ID)
}

func TestFindMatchByTitleSubstring(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	issue := seedIssue(t, s, "Severe water crisis in Chennai", models.Environment, nil, nil)

	match, err := s.Issues.FindMatch(ctx, "WATER CRISIS", models.OtherCategory, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, issue.ID, match.ID)
}

func TestFindMatchByLocation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	state := "Bihar"
	issue := seedIssue(t, s, "Bridge collapse", models.Infrastructure, &state, nil)

	match, err := s.Issues.FindMatch(ctx, "something else entirely", models.OtherCategory, &state, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, issue.ID, match.ID)

	otherState := "Kerala"
	match, err = s.Issues.FindMatch(ctx, "something else entirely", models.OtherCategory, &otherState, nil)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestDiscussionUpdateLeavesUnsetFieldsAlone(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	issue := seedIssue(t, s, "Any issue", models.Health, nil, nil)
	discussion := models.Discussion{
		IssueID: issue.ID,
		UserID:  issue.ID,
		Content: "original content",
	}
	require.NoError(t, s.Discussions.Create(ctx, &discussion))

	moderated := true
	updated, err := s.Discussions.Update(ctx, discussion.ID, DiscussionUpdate{IsModerated: &moderated})
	require.NoError(t, err)
	assert.True(t, updated.IsModerated)
	assert.False(t, updated.IsDeleted)
	assert.Nil(t, updated.ModeratedBy)
	assert.Equal(t, "original content", updated.Content)
}

func TestPollIncrementVotes(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	poll := models.Poll{
		Question: "Kept?",
		Options:  []string{"yes", "no"},
		IsActive: true,
	}
	require.NoError(t, s.Polls.Create(ctx, &poll))

	require.NoError(t, s.Polls.IncrementVotes(ctx, poll.ID))
	require.NoError(t, s.Polls.IncrementVotes(ctx, poll.ID))

	fetched, err := s.Polls.GetByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.TotalVotes)
}

func TestNotFoundErrors(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	missing := primitive.NewObjectID()

	_, err := s.Issues.GetByID(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
