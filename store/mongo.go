package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wakeupvoter-be/models"
)

// NewMongo builds the production store over one MongoDB database,
// one collection per entity.
func NewMongo(db *mongo.Database) *Store {
	return &Store{
		Users:             &mongoUsers{col: db.Collection("users")},
		Issues:            &mongoIssues{col: db.Collection("issues")},
		Timeline:          &mongoTimeline{col: db.Collection("issue_timeline")},
		Reports:           &mongoReports{col: db.Collection("reports"), upvotes: db.Collection("report_upvotes")},
		Parties:           &mongoParties{col: db.Collection("parties")},
		Leaders:           &mongoLeaders{col: db.Collection("leaders")},
		Promises:          &mongoPromises{col: db.Collection("promises")},
		PromiseVotes:      &mongoPromiseVotes{col: db.Collection("promise_votes")},
		PromiseComments:   &mongoPromiseComments{col: db.Collection("promise_comments")},
		PromiseFactChecks: &mongoPromiseFactChecks{col: db.Collection("promise_fact_checks")},
		PromiseReminders:  &mongoPromiseReminders{col: db.Collection("promise_reminders")},
		Discussions:       &mongoDiscussions{col: db.Collection("discussions")},
		FactChecks:        &mongoFactChecks{col: db.Collection("fact_checks")},
		Accountability:    &mongoAccountability{col: db.Collection("accountability")},
		Polls:             &mongoPolls{col: db.Collection("polls")},
		PollVotes:         &mongoPollVotes{col: db.Collection("poll_votes")},
		Reminders:         &mongoReminders{col: db.Collection("reminders")},
		Distractions:      &mongoDistractions{col: db.Collection("distractions")},
	}
}

// EnsureIndexes creates the unique compound indexes backing the
// one-vote-per-pair invariants. The lookup-then-branch logic in the
// handlers is the primary mechanism; these are the backstop.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := func(col string, keys bson.D) error {
		_, err := db.Collection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(true),
		})
		return err
	}

	if err := unique("promise_votes", bson.D{{Key: "promise", Value: 1}, {Key: "user", Value: 1}}); err != nil {
		return err
	}
	if err := unique("report_upvotes", bson.D{{Key: "report", Value: 1}, {Key: "user", Value: 1}}); err != nil {
		return err
	}
	return unique("users", bson.D{{Key: "email", Value: 1}})
}

func findPage[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D, limit, offset int) ([]T, int64, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(sort)
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	cursor, err := col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id primitive.ObjectID) (*T, error) {
	var record T
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func updateByID[T any](ctx context.Context, col *mongo.Collection, id primitive.ObjectID, set bson.M) (*T, error) {
	// Mongo rejects an empty $set; a body with every field omitted is
	// still a valid request and returns the record unchanged.
	if len(set) == 0 {
		return findByID[T](ctx, col, id)
	}
	var record T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, user)
	return err
}

func (s *mongoUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findByID[models.User](ctx, s.col, id)
}

func (s *mongoUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUsers) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"email": email})
}

type mongoIssues struct {
	col *mongo.Collection
}

func (s *mongoIssues) filter(f IssueFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	if f.Scope != "" {
		filter["localVsNational"] = f.Scope
	}
	return filter
}

func (s *mongoIssues) List(ctx context.Context, f IssueFilter) ([]models.Issue, int64, error) {
	sort := bson.D{{Key: "impactScore", Value: -1}, {Key: "lastUpdated", Value: -1}}
	return findPage[models.Issue](ctx, s.col, s.filter(f), sort, f.Limit, f.Offset)
}

func (s *mongoIssues) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Issue, error) {
	return findByID[models.Issue](ctx, s.col, id)
}

func (s *mongoIssues) Create(ctx context.Context, issue *models.Issue) error {
	issue.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, issue)
	return err
}

func (s *mongoIssues) FindMatch(ctx context.Context, title string, category models.IssueCategory, state, city *string) (*models.Issue, error) {
	or := []bson.M{
		{"title": bson.M{"$regex": regexp.QuoteMeta(title), "$options": "i"}},
		{"category": category},
	}
	if state != nil {
		or = append(or, bson.M{"state": *state})
	}
	if city != nil {
		or = append(or, bson.M{"city": *city})
	}

	var issue models.Issue
	err := s.col.FindOne(ctx, bson.M{"$or": or}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *mongoIssues) CountByCategory(ctx context.Context) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func (s *mongoIssues) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": from, "$lt": to},
	})
}

func (s *mongoIssues) CountByStatus(ctx context.Context, statuses ...models.IssueStatus) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"status": bson.M{"$in": statuses}})
}

type mongoTimeline struct {
	col *mongo.Collection
}

func (s *mongoTimeline) Append(ctx context.Context, entry *models.TimelineEntry) error {
	entry.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

func (s *mongoTimeline) ListRecent(ctx context.Context, issueID primitive.ObjectID, limit int) ([]models.TimelineEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.col.Find(ctx, bson.M{"issueId": issueID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.TimelineEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *mongoTimeline) CountByIssue(ctx context.Context, issueID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"issueId": issueID})
}

type mongoReports struct {
	col     *mongo.Collection
	upvotes *mongo.Collection
}

func (s *mongoReports) List(ctx context.Context, f ReportFilter) ([]models.LocalReport, int64, error) {
	filter := bson.M{}
	if f.State != "" {
		filter["state"] = f.State
	}
	if f.City != "" {
		filter["city"] = f.City
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	sort := bson.D{{Key: "createdAt", Value: -1}, {Key: "upvotes", Value: -1}}
	return findPage[models.LocalReport](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoReports) GetByID(ctx context.Context, id primitive.ObjectID) (*models.LocalReport, error) {
	return findByID[models.LocalReport](ctx, s.col, id)
}

func (s *mongoReports) Create(ctx context.Context, report *models.LocalReport) error {
	report.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, report)
	return err
}

func (s *mongoReports) LinkIssue(ctx context.Context, id, issueID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"issueId": issueID, "updatedAt": time.Now()},
	})
	return err
}

func (s *mongoReports) AdjustUpvotes(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"upvotes": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (s *mongoReports) HasUpvote(ctx context.Context, reportID, userID primitive.ObjectID) (bool, error) {
	count, err := s.upvotes.CountDocuments(ctx, bson.M{"report": reportID, "user": userID})
	return count > 0, err
}

func (s *mongoReports) AddUpvote(ctx context.Context, upvote *models.ReportUpvote) error {
	upvote.ID = primitive.NewObjectID()
	_, err := s.upvotes.InsertOne(ctx, upvote)
	return err
}

func (s *mongoReports) RemoveUpvote(ctx context.Context, reportID, userID primitive.ObjectID) error {
	_, err := s.upvotes.DeleteOne(ctx, bson.M{"report": reportID, "user": userID})
	return err
}

func (s *mongoReports) CountByIssue(ctx context.Context, issueID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"issueId": issueID})
}

func (s *mongoReports) CountAll(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
