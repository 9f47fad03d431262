package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wakeupvoter-be/models"
)

// NewMemory builds an in-process store with the same semantics as the
// Mongo one. Handlers and tests can swap it in without touching any
// controller code.
func NewMemory() *Store {
	d := &memData{}
	return &Store{
		Users:             &memUsers{d},
		Issues:            &memIssues{d},
		Timeline:          &memTimeline{d},
		Reports:           &memReports{d},
		Parties:           &memParties{d},
		Leaders:           &memLeaders{d},
		Promises:          &memPromises{d},
		PromiseVotes:      &memPromiseVotes{d},
		PromiseComments:   &memPromiseComments{d},
		PromiseFactChecks: &memPromiseFactChecks{d},
		PromiseReminders:  &memPromiseReminders{d},
		Discussions:       &memDiscussions{d},
		FactChecks:        &memFactChecks{d},
		Accountability:    &memAccountability{d},
		Polls:             &memPolls{d},
		PollVotes:         &memPollVotes{d},
		Reminders:         &memReminders{d},
		Distractions:      &memDistractions{d},
	}
}

type memData struct {
	mu sync.Mutex

	users             []models.User
	issues            []models.Issue
	timeline          []models.TimelineEntry
	reports           []models.LocalReport
	reportUpvotes     []models.ReportUpvote
	parties           []models.Party
	leaders           []models.Leader
	promises          []models.Promise
	promiseVotes      []models.PromiseVote
	promiseComments   []models.PromiseComment
	promiseFactChecks []models.PromiseFactCheck
	promiseReminders  []models.PromiseReminder
	discussions       []models.Discussion
	factChecks        []models.FactCheck
	accountability    []models.Accountability
	polls             []models.Poll
	pollVotes         []models.PollVote
	reminders         []models.Reminder
	distractions      []models.Distraction
}

// page applies offset/limit to an already-filtered slice. Total is the
// pre-pagination length, mirroring the CountDocuments + Find pair.
func page[T any](records []T, limit, offset int) ([]T, int64) {
	total := int64(len(records))
	if offset >= len(records) {
		return nil, total
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	out := make([]T, len(records))
	copy(out, records)
	return out, total
}

// reversed returns a newest-first copy of an insertion-ordered slice.
func reversed[T any](records []T) []T {
	out := make([]T, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out
}

type memUsers struct{ d *memData }

func (s *memUsers) Create(_ context.Context, user *models.User) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	user.ID = primitive.NewObjectID()
	s.d.users = append(s.d.users, *user)
	return nil
}

func (s *memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, u := range s.d.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, u := range s.d.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUsers) CountByEmail(_ context.Context, email string) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, u := range s.d.users {
		if u.Email == email {
			count++
		}
	}
	return count, nil
}

type memIssues struct{ d *memData }

func (s *memIssues) List(_ context.Context, f IssueFilter) ([]models.Issue, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Issue
	for _, issue := range s.d.issues {
		if f.Category != "" && string(issue.Category) != f.Category {
			continue
		}
		if f.Status != "" && string(issue.Status) != f.Status {
			continue
		}
		if f.Priority != "" && string(issue.Priority) != f.Priority {
			continue
		}
		if f.Scope != "" && string(issue.Scope) != f.Scope {
			continue
		}
		matched = append(matched, issue)
	}
	// impactScore desc, ties by most recent update
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].ImpactScore != matched[j].ImpactScore {
			return matched[i].ImpactScore > matched[j].ImpactScore
		}
		return matched[i].LastUpdated.After(matched[j].LastUpdated)
	})
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memIssues) GetByID(_ context.Context, id primitive.ObjectID) (*models.Issue, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, issue := range s.d.issues {
		if issue.ID == id {
			found := issue
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memIssues) Create(_ context.Context, issue *models.Issue) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	issue.ID = primitive.NewObjectID()
	s.d.issues = append(s.d.issues, *issue)
	return nil
}

func (s *memIssues) FindMatch(_ context.Context, title string, category models.IssueCategory, state, city *string) (*models.Issue, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	loweredTitle := strings.ToLower(title)
	for _, issue := range s.d.issues {
		if strings.Contains(strings.ToLower(issue.Title), loweredTitle) {
			found := issue
			return &found, nil
		}
		if issue.Category == category {
			found := issue
			return &found, nil
		}
		if state != nil && issue.State != nil && *issue.State == *state {
			found := issue
			return &found, nil
		}
		if city != nil && issue.City != nil && *issue.City == *city {
			found := issue
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memIssues) CountByCategory(_ context.Context) (map[string]int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	counts := make(map[string]int64)
	for _, issue := range s.d.issues {
		counts[string(issue.Category)]++
	}
	return counts, nil
}

func (s *memIssues) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, issue := range s.d.issues {
		if !issue.CreatedAt.Before(from) && issue.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (s *memIssues) CountByStatus(_ context.Context, statuses ...models.IssueStatus) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, issue := range s.d.issues {
		for _, status := range statuses {
			if issue.Status == status {
				count++
				break
			}
		}
	}
	return count, nil
}

type memTimeline struct{ d *memData }

func (s *memTimeline) Append(_ context.Context, entry *models.TimelineEntry) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	s.d.timeline = append(s.d.timeline, *entry)
	return nil
}

func (s *memTimeline) ListRecent(_ context.Context, issueID primitive.ObjectID, limit int) ([]models.TimelineEntry, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.TimelineEntry
	for _, entry := range s.d.timeline {
		if entry.IssueID == issueID {
			matched = append(matched, entry)
		}
	}
	matched = reversed(matched)
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *memTimeline) CountByIssue(_ context.Context, issueID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, entry := range s.d.timeline {
		if entry.IssueID == issueID {
			count++
		}
	}
	return count, nil
}

type memReports struct{ d *memData }

func (s *memReports) List(_ context.Context, f ReportFilter) ([]models.LocalReport, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.LocalReport
	for _, report := range reversed(s.d.reports) {
		if f.State != "" && (report.State == nil || *report.State != f.State) {
			continue
		}
		if f.City != "" && (report.City == nil || *report.City != f.City) {
			continue
		}
		if f.Category != "" && string(report.Category) != f.Category {
			continue
		}
		if f.Status != "" && string(report.Status) != f.Status {
			continue
		}
		matched = append(matched, report)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memReports) GetByID(_ context.Context, id primitive.ObjectID) (*models.LocalReport, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, report := range s.d.reports {
		if report.ID == id {
			found := report
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memReports) Create(_ context.Context, report *models.LocalReport) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	report.ID = primitive.NewObjectID()
	s.d.reports = append(s.d.reports, *report)
	return nil
}

func (s *memReports) LinkIssue(_ context.Context, id, issueID primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.reports {
		if s.d.reports[i].ID == id {
			linked := issueID
			s.d.reports[i].IssueID = &linked
			s.d.reports[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (s *memReports) AdjustUpvotes(_ context.Context, id primitive.ObjectID, delta int) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.reports {
		if s.d.reports[i].ID == id {
			s.d.reports[i].Upvotes += delta
			s.d.reports[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (s *memReports) HasUpvote(_ context.Context, reportID, userID primitive.ObjectID) (bool, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, upvote := range s.d.reportUpvotes {
		if upvote.ReportID == reportID && upvote.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memReports) AddUpvote(_ context.Context, upvote *models.ReportUpvote) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	upvote.ID = primitive.NewObjectID()
	s.d.reportUpvotes = append(s.d.reportUpvotes, *upvote)
	return nil
}

func (s *memReports) RemoveUpvote(_ context.Context, reportID, userID primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i, upvote := range s.d.reportUpvotes {
		if upvote.ReportID == reportID && upvote.UserID == userID {
			s.d.reportUpvotes = append(s.d.reportUpvotes[:i], s.d.reportUpvotes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memReports) CountByIssue(_ context.Context, issueID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, report := range s.d.reports {
		if report.IssueID != nil && *report.IssueID == issueID {
			count++
		}
	}
	return count, nil
}

func (s *memReports) CountAll(_ context.Context) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	return int64(len(s.d.reports)), nil
}

type memParties struct{ d *memData }

func (s *memParties) List(_ context.Context) ([]models.Party, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	out := make([]models.Party, len(s.d.parties))
	copy(out, s.d.parties)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memParties) GetByID(_ context.Context, id primitive.ObjectID) (*models.Party, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, party := range s.d.parties {
		if party.ID == id {
			found := party
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memParties) Create(_ context.Context, party *models.Party) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	party.ID = primitive.NewObjectID()
	s.d.parties = append(s.d.parties, *party)
	return nil
}

type memLeaders struct{ d *memData }

func (s *memLeaders) List(_ context.Context, f LeaderFilter) ([]models.Leader, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Leader
	for _, leader := range s.d.leaders {
		if f.PartyID != nil && leader.PartyID != *f.PartyID {
			continue
		}
		if f.State != "" && (leader.State == nil || *leader.State != f.State) {
			continue
		}
		if f.IsActive != nil && leader.IsActive != *f.IsActive {
			continue
		}
		matched = append(matched, leader)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, nil
}

func (s *memLeaders) GetByID(_ context.Context, id primitive.ObjectID) (*models.Leader, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, leader := range s.d.leaders {
		if leader.ID == id {
			found := leader
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memLeaders) Create(_ context.Context, leader *models.Leader) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	leader.ID = primitive.NewObjectID()
	s.d.leaders = append(s.d.leaders, *leader)
	return nil
}

func (s *memLeaders) CountByParty(_ context.Context, partyID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, leader := range s.d.leaders {
		if leader.PartyID == partyID {
			count++
		}
	}
	return count, nil
}

type memPromises struct{ d *memData }

func (s *memPromises) List(_ context.Context, f PromiseFilter) ([]models.Promise, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Promise
	for _, promise := range reversed(s.d.promises) {
		if f.PartyID != nil && promise.PartyID != *f.PartyID {
			continue
		}
		if f.LeaderID != nil && (promise.LeaderID == nil || *promise.LeaderID != *f.LeaderID) {
			continue
		}
		if f.Category != "" && promise.Category != f.Category {
			continue
		}
		if f.Status != "" && string(promise.Status) != f.Status {
			continue
		}
		if f.State != "" && (promise.State == nil || *promise.State != f.State) {
			continue
		}
		if f.ElectionYear != nil && promise.ElectionYear != *f.ElectionYear {
			continue
		}
		matched = append(matched, promise)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memPromises) GetByID(_ context.Context, id primitive.ObjectID) (*models.Promise, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, promise := range s.d.promises {
		if promise.ID == id {
			found := promise
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memPromises) Create(_ context.Context, promise *models.Promise) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	promise.ID = primitive.NewObjectID()
	s.d.promises = append(s.d.promises, *promise)
	return nil
}

func (s *memPromises) MarkVerified(_ context.Context, id primitive.ObjectID, verifiedBy string, at time.Time) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.promises {
		if s.d.promises[i].ID == id {
			s.d.promises[i].VerificationLevel = models.VerificationVerified
			s.d.promises[i].IsVerified = true
			s.d.promises[i].VerifiedBy = &verifiedBy
			stamped := at
			s.d.promises[i].VerifiedAt = &stamped
			return nil
		}
	}
	return ErrNotFound
}

func (s *memPromises) CountByParty(_ context.Context, partyID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, promise := range s.d.promises {
		if promise.PartyID == partyID {
			count++
		}
	}
	return count, nil
}

func (s *memPromises) CountByLeader(_ context.Context, leaderID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, promise := range s.d.promises {
		if promise.LeaderID != nil && *promise.LeaderID == leaderID {
			count++
		}
	}
	return count, nil
}

type memPromiseVotes struct{ d *memData }

func (s *memPromiseVotes) List(_ context.Context, f PromiseVoteFilter) ([]models.PromiseVote, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.PromiseVote
	for _, vote := range reversed(s.d.promiseVotes) {
		if f.PromiseID != nil && vote.PromiseID != *f.PromiseID {
			continue
		}
		if f.UserID != nil && vote.UserID != *f.UserID {
			continue
		}
		matched = append(matched, vote)
	}
	return matched, nil
}

func (s *memPromiseVotes) FindByPromiseAndUser(_ context.Context, promiseID, userID primitive.ObjectID) (*models.PromiseVote, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, vote := range s.d.promiseVotes {
		if vote.PromiseID == promiseID && vote.UserID == userID {
			found := vote
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memPromiseVotes) Create(_ context.Context, vote *models.PromiseVote) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	vote.ID = primitive.NewObjectID()
	s.d.promiseVotes = append(s.d.promiseVotes, *vote)
	return nil
}

func (s *memPromiseVotes) Update(_ context.Context, id primitive.ObjectID, upd PromiseVoteUpdate) (*models.PromiseVote, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.promiseVotes {
		if s.d.promiseVotes[i].ID == id {
			s.d.promiseVotes[i].Vote = upd.Vote
			s.d.promiseVotes[i].Confidence = upd.Confidence
			s.d.promiseVotes[i].IsAnonymous = upd.IsAnonymous
			if upd.Comment != nil {
				comment := *upd.Comment
				s.d.promiseVotes[i].Comment = &comment
			}
			s.d.promiseVotes[i].UpdatedAt = time.Now()
			updated := s.d.promiseVotes[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memPromiseVotes) CountByPromise(_ context.Context, promiseID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, vote := range s.d.promiseVotes {
		if vote.PromiseID == promiseID {
			count++
		}
	}
	return count, nil
}

type memPromiseComments struct{ d *memData }

func (s *memPromiseComments) List(_ context.Context, f PromiseCommentFilter) ([]models.PromiseComment, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.PromiseComment
	for _, comment := range reversed(s.d.promiseComments) {
		if comment.IsDeleted {
			continue
		}
		if f.PromiseID != nil && comment.PromiseID != *f.PromiseID {
			continue
		}
		if f.UserID != nil && comment.UserID != *f.UserID {
			continue
		}
		if f.IsModerated != nil && comment.IsModerated != *f.IsModerated {
			continue
		}
		matched = append(matched, comment)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memPromiseComments) Create(_ context.Context, comment *models.PromiseComment) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	comment.ID = primitive.NewObjectID()
	s.d.promiseComments = append(s.d.promiseComments, *comment)
	return nil
}

func (s *memPromiseComments) Update(_ context.Context, id primitive.ObjectID, upd PromiseCommentUpdate) (*models.PromiseComment, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.promiseComments {
		if s.d.promiseComments[i].ID != id {
			continue
		}
		if upd.IsModerated != nil {
			s.d.promiseComments[i].IsModerated = *upd.IsModerated
		}
		if upd.ModeratedBy != nil {
			moderatedBy := *upd.ModeratedBy
			s.d.promiseComments[i].ModeratedBy = &moderatedBy
		}
		if upd.ModeratedAt != nil {
			moderatedAt := *upd.ModeratedAt
			s.d.promiseComments[i].ModeratedAt = &moderatedAt
		}
		if upd.IsDeleted != nil {
			s.d.promiseComments[i].IsDeleted = *upd.IsDeleted
		}
		if upd.Upvotes != nil {
			s.d.promiseComments[i].Upvotes = *upd.Upvotes
		}
		if upd.Downvotes != nil {
			s.d.promiseComments[i].Downvotes = *upd.Downvotes
		}
		updated := s.d.promiseComments[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *memPromiseComments) CountByPromise(_ context.Context, promiseID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, comment := range s.d.promiseComments {
		if comment.PromiseID == promiseID && !comment.IsDeleted {
			count++
		}
	}
	return count, nil
}

type memPromiseFactChecks struct{ d *memData }

func (s *memPromiseFactChecks) List(_ context.Context, f PromiseFactCheckFilter) ([]models.PromiseFactCheck, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.PromiseFactCheck
	for _, fc := range reversed(s.d.promiseFactChecks) {
		if f.PromiseID != nil && fc.PromiseID != *f.PromiseID {
			continue
		}
		if f.Rating != "" && string(fc.Rating) != f.Rating {
			continue
		}
		matched = append(matched, fc)
	}
	return matched, nil
}

func (s *memPromiseFactChecks) Create(_ context.Context, fc *models.PromiseFactCheck) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	fc.ID = primitive.NewObjectID()
	s.d.promiseFactChecks = append(s.d.promiseFactChecks, *fc)
	return nil
}

func (s *memPromiseFactChecks) CountByPromise(_ context.Context, promiseID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, fc := range s.d.promiseFactChecks {
		if fc.PromiseID == promiseID {
			count++
		}
	}
	return count, nil
}

type memPromiseReminders struct{ d *memData }

func (s *memPromiseReminders) List(_ context.Context, f PromiseReminderFilter) ([]models.PromiseReminder, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.PromiseReminder
	for _, reminder := range s.d.promiseReminders {
		if f.UserID != nil && reminder.UserID != *f.UserID {
			continue
		}
		if f.PromiseID != nil && reminder.PromiseID != *f.PromiseID {
			continue
		}
		if f.IsActive != nil && reminder.IsActive != *f.IsActive {
			continue
		}
		matched = append(matched, reminder)
	}
	return matched, nil
}

func (s *memPromiseReminders) Create(_ context.Context, reminder *models.PromiseReminder) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	reminder.ID = primitive.NewObjectID()
	s.d.promiseReminders = append(s.d.promiseReminders, *reminder)
	return nil
}

func (s *memPromiseReminders) Update(_ context.Context, id primitive.ObjectID, upd PromiseReminderUpdate) (*models.PromiseReminder, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.promiseReminders {
		if s.d.promiseReminders[i].ID != id {
			continue
		}
		if upd.IsActive != nil {
			s.d.promiseReminders[i].IsActive = *upd.IsActive
		}
		if upd.LastSent != nil {
			lastSent := *upd.LastSent
			s.d.promiseReminders[i].LastSent = &lastSent
		}
		if upd.NextDue != nil {
			s.d.promiseReminders[i].NextDue = *upd.NextDue
		}
		updated := s.d.promiseReminders[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

type memDiscussions struct{ d *memData }

func (s *memDiscussions) List(_ context.Context, f DiscussionFilter) ([]models.Discussion, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Discussion
	for _, discussion := range reversed(s.d.discussions) {
		if discussion.IsDeleted {
			continue
		}
		if f.IssueID != nil && discussion.IssueID != *f.IssueID {
			continue
		}
		if f.UserID != nil && discussion.UserID != *f.UserID {
			continue
		}
		if f.IsExpert != nil && discussion.IsExpert != *f.IsExpert {
			continue
		}
		if f.IsModerated != nil && discussion.IsModerated != *f.IsModerated {
			continue
		}
		matched = append(matched, discussion)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memDiscussions) Create(_ context.Context, discussion *models.Discussion) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	discussion.ID = primitive.NewObjectID()
	s.d.discussions = append(s.d.discussions, *discussion)
	return nil
}

func (s *memDiscussions) Update(_ context.Context, id primitive.ObjectID, upd DiscussionUpdate) (*models.Discussion, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.discussions {
		if s.d.discussions[i].ID != id {
			continue
		}
		if upd.IsModerated != nil {
			s.d.discussions[i].IsModerated = *upd.IsModerated
		}
		if upd.ModeratedBy != nil {
			moderatedBy := *upd.ModeratedBy
			s.d.discussions[i].ModeratedBy = &moderatedBy
		}
		if upd.ModeratedAt != nil {
			moderatedAt := *upd.ModeratedAt
			s.d.discussions[i].ModeratedAt = &moderatedAt
		}
		if upd.IsDeleted != nil {
			s.d.discussions[i].IsDeleted = *upd.IsDeleted
		}
		updated := s.d.discussions[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *memDiscussions) CountByIssue(_ context.Context, issueID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, discussion := range s.d.discussions {
		if discussion.IssueID == issueID && !discussion.IsDeleted {
			count++
		}
	}
	return count, nil
}

type memFactChecks struct{ d *memData }

func (s *memFactChecks) List(_ context.Context, f FactCheckFilter) ([]models.FactCheck, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.FactCheck
	for _, fc := range reversed(s.d.factChecks) {
		if f.IssueID != nil && fc.IssueID != *f.IssueID {
			continue
		}
		if f.IsMisleading != nil && fc.IsMisleading != *f.IsMisleading {
			continue
		}
		matched = append(matched, fc)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memFactChecks) Create(_ context.Context, fc *models.FactCheck) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	fc.ID = primitive.NewObjectID()
	s.d.factChecks = append(s.d.factChecks, *fc)
	return nil
}

type memAccountability struct{ d *memData }

func (s *memAccountability) List(_ context.Context, f AccountabilityFilter) ([]models.Accountability, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Accountability
	for _, record := range reversed(s.d.accountability) {
		if f.IssueID != nil && record.IssueID != *f.IssueID {
			continue
		}
		if f.Status != "" && record.Status != f.Status {
			continue
		}
		if f.PromiseType != "" && record.PromiseType != f.PromiseType {
			continue
		}
		matched = append(matched, record)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memAccountability) Create(_ context.Context, record *models.Accountability) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	record.ID = primitive.NewObjectID()
	s.d.accountability = append(s.d.accountability, *record)
	return nil
}

func (s *memAccountability) Update(_ context.Context, id primitive.ObjectID, upd AccountabilityUpdate) (*models.Accountability, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.accountability {
		if s.d.accountability[i].ID != id {
			continue
		}
		if upd.ActualAction != nil {
			actualAction := *upd.ActualAction
			s.d.accountability[i].ActualAction = &actualAction
		}
		if upd.Status != nil {
			s.d.accountability[i].Status = *upd.Status
		}
		if upd.CompletedAt != nil {
			completedAt := *upd.CompletedAt
			s.d.accountability[i].CompletedAt = &completedAt
		}
		s.d.accountability[i].LastUpdated = time.Now()
		updated := s.d.accountability[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

type memPolls struct{ d *memData }

func (s *memPolls) List(_ context.Context, f PollFilter) ([]models.Poll, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Poll
	for _, poll := range reversed(s.d.polls) {
		if f.PromiseID != nil && (poll.PromiseID == nil || *poll.PromiseID != *f.PromiseID) {
			continue
		}
		if f.IsActive != nil && poll.IsActive != *f.IsActive {
			continue
		}
		matched = append(matched, poll)
	}
	return matched, nil
}

func (s *memPolls) GetByID(_ context.Context, id primitive.ObjectID) (*models.Poll, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, poll := range s.d.polls {
		if poll.ID == id {
			found := poll
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memPolls) Create(_ context.Context, poll *models.Poll) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	poll.ID = primitive.NewObjectID()
	s.d.polls = append(s.d.polls, *poll)
	return nil
}

func (s *memPolls) Update(_ context.Context, id primitive.ObjectID, upd PollUpdate) (*models.Poll, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.polls {
		if s.d.polls[i].ID != id {
			continue
		}
		if upd.IsActive != nil {
			s.d.polls[i].IsActive = *upd.IsActive
		}
		if upd.TotalVotes != nil {
			s.d.polls[i].TotalVotes = *upd.TotalVotes
		}
		updated := s.d.polls[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *memPolls) IncrementVotes(_ context.Context, id primitive.ObjectID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.polls {
		if s.d.polls[i].ID == id {
			s.d.polls[i].TotalVotes++
			return nil
		}
	}
	return ErrNotFound
}

type memPollVotes struct{ d *memData }

func (s *memPollVotes) List(_ context.Context, f PollVoteFilter) ([]models.PollVote, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.PollVote
	for _, vote := range reversed(s.d.pollVotes) {
		if f.PollID != nil && vote.PollID != *f.PollID {
			continue
		}
		if f.UserID != nil && (vote.UserID == nil || *vote.UserID != *f.UserID) {
			continue
		}
		matched = append(matched, vote)
	}
	return matched, nil
}

func (s *memPollVotes) Create(_ context.Context, vote *models.PollVote) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	vote.ID = primitive.NewObjectID()
	s.d.pollVotes = append(s.d.pollVotes, *vote)
	return nil
}

func (s *memPollVotes) HasUserVote(_ context.Context, pollID, userID primitive.ObjectID) (bool, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, vote := range s.d.pollVotes {
		if vote.PollID == pollID && vote.UserID != nil && *vote.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memPollVotes) HasAnonymousVote(_ context.Context, pollID primitive.ObjectID, ipAddress string) (bool, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, vote := range s.d.pollVotes {
		if vote.PollID == pollID && vote.UserID == nil &&
			vote.IPAddress != nil && *vote.IPAddress == ipAddress {
			return true, nil
		}
	}
	return false, nil
}

func (s *memPollVotes) CountByPoll(_ context.Context, pollID primitive.ObjectID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var count int64
	for _, vote := range s.d.pollVotes {
		if vote.PollID == pollID {
			count++
		}
	}
	return count, nil
}

type memReminders struct{ d *memData }

func (s *memReminders) List(_ context.Context, f ReminderFilter) ([]models.Reminder, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Reminder
	for _, reminder := range s.d.reminders {
		if reminder.UserID != f.UserID {
			continue
		}
		if f.Type != "" && reminder.Type != f.Type {
			continue
		}
		if f.IsActive != nil && reminder.IsActive != *f.IsActive {
			continue
		}
		matched = append(matched, reminder)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ScheduledFor.Before(matched[j].ScheduledFor)
	})
	return matched, nil
}

func (s *memReminders) Create(_ context.Context, reminder *models.Reminder) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	reminder.ID = primitive.NewObjectID()
	s.d.reminders = append(s.d.reminders, *reminder)
	return nil
}

func (s *memReminders) Update(_ context.Context, id primitive.ObjectID, upd ReminderUpdate) (*models.Reminder, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.reminders {
		if s.d.reminders[i].ID != id {
			continue
		}
		if upd.IsSent != nil {
			s.d.reminders[i].IsSent = *upd.IsSent
		}
		if upd.SentAt != nil {
			sentAt := *upd.SentAt
			s.d.reminders[i].SentAt = &sentAt
		}
		if upd.IsActive != nil {
			s.d.reminders[i].IsActive = *upd.IsActive
		}
		updated := s.d.reminders[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

type memDistractions struct{ d *memData }

func (s *memDistractions) List(_ context.Context, f DistractionFilter) ([]models.Distraction, int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var matched []models.Distraction
	for _, distraction := range reversed(s.d.distractions) {
		if f.Category != "" && distraction.Category != f.Category {
			continue
		}
		if f.ImpactLevel != "" && distraction.ImpactLevel != f.ImpactLevel {
			continue
		}
		if f.IsActive != nil && distraction.IsActive != *f.IsActive {
			continue
		}
		matched = append(matched, distraction)
	}
	records, total := page(matched, f.Limit, f.Offset)
	return records, total, nil
}

func (s *memDistractions) Create(_ context.Context, distraction *models.Distraction) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	distraction.ID = primitive.NewObjectID()
	s.d.distractions = append(s.d.distractions, *distraction)
	return nil
}

func (s *memDistractions) SetActive(_ context.Context, id primitive.ObjectID, active bool) (*models.Distraction, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i := range s.d.distractions {
		if s.d.distractions[i].ID == id {
			s.d.distractions[i].IsActive = active
			updated := s.d.distractions[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}
