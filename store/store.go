// Package store holds the per-entity persistence gateways. Every handler
// is written against these interfaces; NewMongo wires the production
// MongoDB implementation and NewMemory the in-process fake the tests use.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
)

// ErrNotFound is returned whenever a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

type IssueFilter struct {
	Category string
	Status   string
	Priority string
	Scope    string
	Limit    int
	Offset   int
}

type ReportFilter struct {
	State    string
	City     string
	Category string
	Status   string
	Limit    int
	Offset   int
}

type PromiseFilter struct {
	PartyID      *primitive.ObjectID
	LeaderID     *primitive.ObjectID
	Category     string
	Status       string
	State        string
	ElectionYear *int
	Limit        int
	Offset       int
}

type PromiseVoteFilter struct {
	PromiseID *primitive.ObjectID
	UserID    *primitive.ObjectID
}

type PromiseCommentFilter struct {
	PromiseID   *primitive.ObjectID
	UserID      *primitive.ObjectID
	IsModerated *bool
	Limit       int
	Offset      int
}

type PromiseFactCheckFilter struct {
	PromiseID *primitive.ObjectID
	Rating    string
}

type PromiseReminderFilter struct {
	UserID    *primitive.ObjectID
	PromiseID *primitive.ObjectID
	IsActive  *bool
}

type DiscussionFilter struct {
	IssueID     *primitive.ObjectID
	UserID      *primitive.ObjectID
	IsExpert    *bool
	IsModerated *bool
	Limit       int
	Offset      int
}

type FactCheckFilter struct {
	IssueID      *primitive.ObjectID
	IsMisleading *bool
	Limit        int
	Offset       int
}

type AccountabilityFilter struct {
	IssueID     *primitive.ObjectID
	Status      string
	PromiseType string
	Limit       int
	Offset      int
}

type PollFilter struct {
	PromiseID *primitive.ObjectID
	IsActive  *bool
}

type PollVoteFilter struct {
	PollID *primitive.ObjectID
	UserID *primitive.ObjectID
}

type ReminderFilter struct {
	UserID   primitive.ObjectID
	Type     string
	IsActive *bool
}

type LeaderFilter struct {
	PartyID  *primitive.ObjectID
	State    string
	IsActive *bool
}

type DistractionFilter struct {
	Category    string
	ImpactLevel string
	IsActive    *bool
	Limit       int
	Offset      int
}

// Partial-update structs. A nil field means "leave unchanged".

type DiscussionUpdate struct {
	IsModerated *bool
	ModeratedBy *string
	ModeratedAt *time.Time
	IsDeleted   *bool
}

type PromiseCommentUpdate struct {
	IsModerated *bool
	ModeratedBy *string
	ModeratedAt *time.Time
	IsDeleted   *bool
	Upvotes     *int
	Downvotes   *int
}

type PromiseVoteUpdate struct {
	Vote        models.VoteValue
	Confidence  int
	Comment     *string
	IsAnonymous bool
}

type AccountabilityUpdate struct {
	ActualAction *string
	Status       *string
	CompletedAt  *time.Time
}

type PollUpdate struct {
	IsActive   *bool
	TotalVotes *int
}

type ReminderUpdate struct {
	IsSent   *bool
	SentAt   *time.Time
	IsActive *bool
}

type PromiseReminderUpdate struct {
	IsActive *bool
	LastSent *time.Time
	NextDue  *time.Time
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type IssueStore interface {
	List(ctx context.Context, f IssueFilter) ([]models.Issue, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Issue, error)
	Create(ctx context.Context, issue *models.Issue) error
	// FindMatch returns the first issue whose title contains the given
	// title as a case-insensitive substring, or whose category, state or
	// city matches. nil is returned when nothing matches.
	FindMatch(ctx context.Context, title string, category models.IssueCategory, state, city *string) (*models.Issue, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, statuses ...models.IssueStatus) (int64, error)
}

type TimelineStore interface {
	Append(ctx context.Context, entry *models.TimelineEntry) error
	ListRecent(ctx context.Context, issueID primitive.ObjectID, limit int) ([]models.TimelineEntry, error)
	CountByIssue(ctx context.Context, issueID primitive.ObjectID) (int64, error)
}

type ReportStore interface {
	List(ctx context.Context, f ReportFilter) ([]models.LocalReport, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.LocalReport, error)
	Create(ctx context.Context, report *models.LocalReport) error
	LinkIssue(ctx context.Context, id, issueID primitive.ObjectID) error
	AdjustUpvotes(ctx context.Context, id primitive.ObjectID, delta int) error
	HasUpvote(ctx context.Context, reportID, userID primitive.ObjectID) (bool, error)
	AddUpvote(ctx context.Context, upvote *models.ReportUpvote) error
	RemoveUpvote(ctx context.Context, reportID, userID primitive.ObjectID) error
	CountByIssue(ctx context.Context, issueID primitive.ObjectID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type PartyStore interface {
	List(ctx context.Context) ([]models.Party, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Party, error)
	Create(ctx context.Context, party *models.Party) error
}

type LeaderStore interface {
	List(ctx context.Context, f LeaderFilter) ([]models.Leader, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Leader, error)
	Create(ctx context.Context, leader *models.Leader) error
	CountByParty(ctx context.Context, partyID primitive.ObjectID) (int64, error)
}

type PromiseStore interface {
	List(ctx context.Context, f PromiseFilter) ([]models.Promise, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Promise, error)
	Create(ctx context.Context, promise *models.Promise) error
	MarkVerified(ctx context.Context, id primitive.ObjectID, verifiedBy string, at time.Time) error
	CountByParty(ctx context.Context, partyID primitive.ObjectID) (int64, error)
	CountByLeader(ctx context.Context, leaderID primitive.ObjectID) (int64, error)
}

type PromiseVoteStore interface {
	List(ctx context.Context, f PromiseVoteFilter) ([]models.PromiseVote, error)
	FindByPromiseAndUser(ctx context.Context, promiseID, userID primitive.ObjectID) (*models.PromiseVote, error)
	Create(ctx context.Context, vote *models.PromiseVote) error
	Update(ctx context.Context, id primitive.ObjectID, upd PromiseVoteUpdate) (*models.PromiseVote, error)
	CountByPromise(ctx context.Context, promiseID primitive.ObjectID) (int64, error)
}

type PromiseCommentStore interface {
	List(ctx context.Context, f PromiseCommentFilter) ([]models.PromiseComment, int64, error)
	Create(ctx context.Context, comment *models.PromiseComment) error
	Update(ctx context.Context, id primitive.ObjectID, upd PromiseCommentUpdate) (*models.PromiseComment, error)
	CountByPromise(ctx context.Context, promiseID primitive.ObjectID) (int64, error)
}

type PromiseFactCheckStore interface {
	List(ctx context.Context, f PromiseFactCheckFilter) ([]models.PromiseFactCheck, error)
	Create(ctx context.Context, fc *models.PromiseFactCheck) error
	CountByPromise(ctx context.Context, promiseID primitive.ObjectID) (int64, error)
}

type PromiseReminderStore interface {
	List(ctx context.Context, f PromiseReminderFilter) ([]models.PromiseReminder, error)
	Create(ctx context.Context, reminder *models.PromiseReminder) error
	Update(ctx context.Context, id primitive.ObjectID, upd PromiseReminderUpdate) (*models.PromiseReminder, error)
}

type DiscussionStore interface {
	List(ctx context.Context, f DiscussionFilter) ([]models.Discussion, int64, error)
	Create(ctx context.Context, discussion *models.Discussion) error
	Update(ctx context.Context, id primitive.ObjectID, upd DiscussionUpdate) (*models.Discussion, error)
	CountByIssue(ctx context.Context, issueID primitive.ObjectID) (int64, error)
}

type FactCheckStore interface {
	List(ctx context.Context, f FactCheckFilter) ([]models.FactCheck, int64, error)
	Create(ctx context.Context, fc *models.FactCheck) error
}

type AccountabilityStore interface {
	List(ctx context.Context, f AccountabilityFilter) ([]models.Accountability, int64, error)
	Create(ctx context.Context, record *models.Accountability) error
	Update(ctx context.Context, id primitive.ObjectID, upd AccountabilityUpdate) (*models.Accountability, error)
}

type PollStore interface {
	List(ctx context.Context, f PollFilter) ([]models.Poll, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Poll, error)
	Create(ctx context.Context, poll *models.Poll) error
	Update(ctx context.Context, id primitive.ObjectID, upd PollUpdate) (*models.Poll, error)
	IncrementVotes(ctx context.Context, id primitive.ObjectID) error
}

type PollVoteStore interface {
	List(ctx context.Context, f PollVoteFilter) ([]models.PollVote, error)
	Create(ctx context.Context, vote *models.PollVote) error
	HasUserVote(ctx context.Context, pollID, userID primitive.ObjectID) (bool, error)
	// HasAnonymousVote only considers ballots without a user reference.
	HasAnonymousVote(ctx context.Context, pollID primitive.ObjectID, ipAddress string) (bool, error)
	CountByPoll(ctx context.Context, pollID primitive.ObjectID) (int64, error)
}

type ReminderStore interface {
	List(ctx context.Context, f ReminderFilter) ([]models.Reminder, error)
	Create(ctx context.Context, reminder *models.Reminder) error
	Update(ctx context.Context, id primitive.ObjectID, upd ReminderUpdate) (*models.Reminder, error)
}

type DistractionStore interface {
	List(ctx context.Context, f DistractionFilter) ([]models.Distraction, int64, error)
	Create(ctx context.Context, distraction *models.Distraction) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Distraction, error)
}

// Store bundles every gateway; built once in main and handed to the
// controllers.
type Store struct {
	Users             UserStore
	Issues            IssueStore
	Timeline          TimelineStore
	Reports           ReportStore
	Parties           PartyStore
	Leaders           LeaderStore
	Promises          PromiseStore
	PromiseVotes      PromiseVoteStore
	PromiseComments   PromiseCommentStore
	PromiseFactChecks PromiseFactCheckStore
	PromiseReminders  PromiseReminderStore
	Discussions       DiscussionStore
	FactChecks        FactCheckStore
	Accountability    AccountabilityStore
	Polls             PollStore
	PollVotes         PollVoteStore
	Reminders         ReminderStore
	Distractions      DistractionStore
}
