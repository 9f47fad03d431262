package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wakeupvoter-be/models"
)

type mongoDiscussions struct {
	col *mongo.Collection
}

func (s *mongoDiscussions) List(ctx context.Context, f DiscussionFilter) ([]models.Discussion, int64, error) {
	filter := bson.M{"isDeleted": false}
	if f.IssueID != nil {
		filter["issueId"] = *f.IssueID
	}
	if f.UserID != nil {
		filter["userId"] = *f.UserID
	}
	if f.IsExpert != nil {
		filter["isExpert"] = *f.IsExpert
	}
	if f.IsModerated != nil {
		filter["isModerated"] = *f.IsModerated
	}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	return findPage[models.Discussion](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoDiscussions) Create(ctx context.Context, discussion *models.Discussion) error {
	discussion.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, discussion)
	return err
}

func (s *mongoDiscussions) Update(ctx context.Context, id primitive.ObjectID, upd DiscussionUpdate) (*models.Discussion, error) {
	set := bson.M{}
	if upd.IsModerated != nil {
		set["isModerated"] = *upd.IsModerated
	}
	if upd.ModeratedBy != nil {
		set["moderatedBy"] = *upd.ModeratedBy
	}
	if upd.ModeratedAt != nil {
		set["moderatedAt"] = *upd.ModeratedAt
	}
	if upd.IsDeleted != nil {
		set["isDeleted"] = *upd.IsDeleted
	}
	return updateByID[models.Discussion](ctx, s.col, id, set)
}

func (s *mongoDiscussions) CountByIssue(ctx context.Context, issueID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"issueId": issueID, "isDeleted": false})
}

type mongoFactChecks struct {
	col *mongo.Collection
}

func (s *mongoFactChecks) List(ctx context.Context, f FactCheckFilter) ([]models.FactCheck, int64, error) {
	filter := bson.M{}
	if f.IssueID != nil {
		filter["issueId"] = *f.IssueID
	}
	if f.IsMisleading != nil {
		filter["isMisleading"] = *f.IsMisleading
	}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	return findPage[models.FactCheck](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoFactChecks) Create(ctx context.Context, fc *models.FactCheck) error {
	fc.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, fc)
	return err
}

type mongoAccountability struct {
	col *mongo.Collection
}

func (s *mongoAccountability) List(ctx context.Context, f AccountabilityFilter) ([]models.Accountability, int64, error) {
	filter := bson.M{}
	if f.IssueID != nil {
		filter["issueId"] = *f.IssueID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.PromiseType != "" {
		filter["promiseType"] = f.PromiseType
	}
	sort := bson.D{{Key: "promisedDate", Value: -1}, {Key: "lastUpdated", Value: -1}}
	return findPage[models.Accountability](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoAccountability) Create(ctx context.Context, record *models.Accountability) error {
	record.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, record)
	return err
}

func (s *mongoAccountability) Update(ctx context.Context, id primitive.ObjectID, upd AccountabilityUpdate) (*models.Accountability, error) {
	set := bson.M{}
	if upd.ActualAction != nil {
		set["actualAction"] = *upd.ActualAction
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.CompletedAt != nil {
		set["completedAt"] = *upd.CompletedAt
	}
	return updateByID[models.Accountability](ctx, s.col, id, set)
}

type mongoPolls struct {
	col *mongo.Collection
}

func (s *mongoPolls) List(ctx context.Context, f PollFilter) ([]models.Poll, error) {
	filter := bson.M{}
	if f.PromiseID != nil {
		filter["promiseId"] = *f.PromiseID
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	return findAll[models.Poll](ctx, s.col, filter, bson.D{{Key: "createdAt", Value: -1}})
}

func (s *mongoPolls) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Poll, error) {
	return findByID[models.Poll](ctx, s.col, id)
}

func (s *mongoPolls) Create(ctx context.Context, poll *models.Poll) error {
	poll.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, poll)
	return err
}

func (s *mongoPolls) Update(ctx context.Context, id primitive.ObjectID, upd PollUpdate) (*models.Poll, error) {
	set := bson.M{}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.TotalVotes != nil {
		set["totalVotes"] = *upd.TotalVotes
	}
	return updateByID[models.Poll](ctx, s.col, id, set)
}

func (s *mongoPolls) IncrementVotes(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"totalVotes": 1}})
	return err
}

type mongoPollVotes struct {
	col *mongo.Collection
}

func (s *mongoPollVotes) List(ctx context.Context, f PollVoteFilter) ([]models.PollVote, error) {
	filter := bson.M{}
	if f.PollID != nil {
		filter["pollId"] = *f.PollID
	}
	if f.UserID != nil {
		filter["userId"] = *f.UserID
	}
	return findAll[models.PollVote](ctx, s.col, filter, bson.D{{Key: "createdAt", Value: -1}})
}

func (s *mongoPollVotes) Create(ctx context.Context, vote *models.PollVote) error {
	vote.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, vote)
	return err
}

func (s *mongoPollVotes) HasUserVote(ctx context.Context, pollID, userID primitive.ObjectID) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"pollId": pollID, "userId": userID})
	return count > 0, err
}

func (s *mongoPollVotes) HasAnonymousVote(ctx context.Context, pollID primitive.ObjectID, ipAddress string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"pollId":    pollID,
		"ipAddress": ipAddress,
		"userId":    nil,
	})
	return count > 0, err
}

func (s *mongoPollVotes) CountByPoll(ctx context.Context, pollID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"pollId": pollID})
}

type mongoReminders struct {
	col *mongo.Collection
}

func (s *mongoReminders) List(ctx context.Context, f ReminderFilter) ([]models.Reminder, error) {
	filter := bson.M{"userId": f.UserID}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	return findAll[models.Reminder](ctx, s.col, filter, bson.D{{Key: "scheduledFor", Value: 1}})
}

func (s *mongoReminders) Create(ctx context.Context, reminder *models.Reminder) error {
	reminder.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, reminder)
	return err
}

func (s *mongoReminders) Update(ctx context.Context, id primitive.ObjectID, upd ReminderUpdate) (*models.Reminder, error) {
	set := bson.M{}
	if upd.IsSent != nil {
		set["isSent"] = *upd.IsSent
	}
	if upd.SentAt != nil {
		set["sentAt"] = *upd.SentAt
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	return updateByID[models.Reminder](ctx, s.col, id, set)
}

type mongoDistractions struct {
	col *mongo.Collection
}

func (s *mongoDistractions) List(ctx context.Context, f DistractionFilter) ([]models.Distraction, int64, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.ImpactLevel != "" {
		filter["impactLevel"] = f.ImpactLevel
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	sort := bson.D{{Key: "detectedAt", Value: -1}}
	return findPage[models.Distraction](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoDistractions) Create(ctx context.Context, distraction *models.Distraction) error {
	distraction.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, distraction)
	return err
}

func (s *mongoDistractions) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Distraction, error) {
	return updateByID[models.Distraction](ctx, s.col, id, bson.M{"isActive": active})
}
