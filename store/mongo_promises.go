package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wakeupvoter-be/models"
)

type mongoParties struct {
	col *mongo.Collection
}

func (s *mongoParties) List(ctx context.Context) ([]models.Party, error) {
	return findAll[models.Party](ctx, s.col, bson.M{}, bson.D{{Key: "name", Value: 1}})
}

func (s *mongoParties) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Party, error) {
	return findByID[models.Party](ctx, s.col, id)
}

func (s *mongoParties) Create(ctx context.Context, party *models.Party) error {
	party.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, party)
	return err
}

type mongoLeaders struct {
	col *mongo.Collection
}

func (s *mongoLeaders) List(ctx context.Context, f LeaderFilter) ([]models.Leader, error) {
	filter := bson.M{}
	if f.PartyID != nil {
		filter["partyId"] = *f.PartyID
	}
	if f.State != "" {
		filter["state"] = f.State
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	return findAll[models.Leader](ctx, s.col, filter, bson.D{{Key: "name", Value: 1}})
}

func (s *mongoLeaders) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Leader, error) {
	return findByID[models.Leader](ctx, s.col, id)
}

func (s *mongoLeaders) Create(ctx context.Context, leader *models.Leader) error {
	leader.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, leader)
	return err
}

func (s *mongoLeaders) CountByParty(ctx context.Context, partyID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"partyId": partyID})
}

type mongoPromises struct {
	col *mongo.Collection
}

func (s *mongoPromises) List(ctx context.Context, f PromiseFilter) ([]models.Promise, int64, error) {
	filter := bson.M{}
	if f.PartyID != nil {
		filter["partyId"] = *f.PartyID
	}
	if f.LeaderID != nil {
		filter["leaderId"] = *f.LeaderID
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.State != "" {
		filter["state"] = f.State
	}
	if f.ElectionYear != nil {
		filter["electionYear"] = *f.ElectionYear
	}
	sort := bson.D{{Key: "promiseDate", Value: -1}, {Key: "createdAt", Value: -1}}
	return findPage[models.Promise](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoPromises) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Promise, error) {
	return findByID[models.Promise](ctx, s.col, id)
}

func (s *mongoPromises) Create(ctx context.Context, promise *models.Promise) error {
	promise.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, promise)
	return err
}

func (s *mongoPromises) MarkVerified(ctx context.Context, id primitive.ObjectID, verifiedBy string, at time.Time) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"verificationLevel": models.VerificationVerified,
		"isVerified":        true,
		"verifiedBy":        verifiedBy,
		"verifiedAt":        at,
	}})
	return err
}

func (s *mongoPromises) CountByParty(ctx context.Context, partyID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"partyId": partyID})
}

func (s *mongoPromises) CountByLeader(ctx context.Context, leaderID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"leaderId": leaderID})
}

type mongoPromiseVotes struct {
	col *mongo.Collection
}

func (s *mongoPromiseVotes) List(ctx context.Context, f PromiseVoteFilter) ([]models.PromiseVote, error) {
	filter := bson.M{}
	if f.PromiseID != nil {
		filter["promise"] = *f.PromiseID
	}
	if f.UserID != nil {
		filter["user"] = *f.UserID
	}
	return findAll[models.PromiseVote](ctx, s.col, filter, bson.D{{Key: "createdAt", Value: -1}})
}

func (s *mongoPromiseVotes) FindByPromiseAndUser(ctx context.Context, promiseID, userID primitive.ObjectID) (*models.PromiseVote, error) {
	var vote models.PromiseVote
	err := s.col.FindOne(ctx, bson.M{"promise": promiseID, "user": userID}).Decode(&vote)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *mongoPromiseVotes) Create(ctx context.Context, vote *models.PromiseVote) error {
	vote.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, vote)
	return err
}

func (s *mongoPromiseVotes) Update(ctx context.Context, id primitive.ObjectID, upd PromiseVoteUpdate) (*models.PromiseVote, error) {
	set := bson.M{
		"vote":        upd.Vote,
		"confidence":  upd.Confidence,
		"isAnonymous": upd.IsAnonymous,
		"updatedAt":   time.Now(),
	}
	if upd.Comment != nil {
		set["comment"] = *upd.Comment
	}
	return updateByID[models.PromiseVote](ctx, s.col, id, set)
}

func (s *mongoPromiseVotes) CountByPromise(ctx context.Context, promiseID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"promise": promiseID})
}

type mongoPromiseComments struct {
	col *mongo.Collection
}

func (s *mongoPromiseComments) List(ctx context.Context, f PromiseCommentFilter) ([]models.PromiseComment, int64, error) {
	filter := bson.M{"isDeleted": false}
	if f.PromiseID != nil {
		filter["promiseId"] = *f.PromiseID
	}
	if f.UserID != nil {
		filter["userId"] = *f.UserID
	}
	if f.IsModerated != nil {
		filter["isModerated"] = *f.IsModerated
	}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	return findPage[models.PromiseComment](ctx, s.col, filter, sort, f.Limit, f.Offset)
}

func (s *mongoPromiseComments) Create(ctx context.Context, comment *models.PromiseComment) error {
	comment.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, comment)
	return err
}

func (s *mongoPromiseComments) Update(ctx context.Context, id primitive.ObjectID, upd PromiseCommentUpdate) (*models.PromiseComment, error) {
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
	if upd.Upvotes != nil {
		set["upvotes"] = *upd.Upvotes
	}
	if upd.Downvotes != nil {
		set["downvotes"] = *upd.Downvotes
	}
	return updateByID[models.PromiseComment](ctx, s.col, id, set)
}

func (s *mongoPromiseComments) CountByPromise(ctx context.Context, promiseID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"promiseId": promiseID, "isDeleted": false})
}

type mongoPromiseFactChecks struct {
	col *mongo.Collection
}

func (s *mongoPromiseFactChecks) List(ctx context.Context, f PromiseFactCheckFilter) ([]models.PromiseFactCheck, error) {
	filter := bson.M{}
	if f.PromiseID != nil {
		filter["promiseId"] = *f.PromiseID
	}
	if f.Rating != "" {
		filter["rating"] = f.Rating
	}
	return findAll[models.PromiseFactCheck](ctx, s.col, filter, bson.D{{Key: "createdAt", Value: -1}})
}

func (s *mongoPromiseFactChecks) Create(ctx context.Context, fc *models.PromiseFactCheck) error {
	fc.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, fc)
	return err
}

func (s *mongoPromiseFactChecks) CountByPromise(ctx context.Context, promiseID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"promiseId": promiseID})
}

type mongoPromiseReminders struct {
	col *mongo.Collection
}

func (s *mongoPromiseReminders) List(ctx context.Context, f PromiseReminderFilter) ([]models.PromiseReminder, error) {
	filter := bson.M{}
	if f.UserID != nil {
		filter["userId"] = *f.UserID
	}
	if f.PromiseID != nil {
		filter["promiseId"] = *f.PromiseID
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	return findAll[models.PromiseReminder](ctx, s.col, filter, bson.D{{Key: "nextDue", Value: 1}})
}

func (s *mongoPromiseReminders) Create(ctx context.Context, reminder *models.PromiseReminder) error {
	reminder.ID = primitive.NewObjectID()
	_, err := s.col.InsertOne(ctx, reminder)
	return err
}

func (s *mongoPromiseReminders) Update(ctx context.Context, id primitive.ObjectID, upd PromiseReminderUpdate) (*models.PromiseReminder, error) {
	set := bson.M{}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.LastSent != nil {
		set["lastSent"] = *upd.LastSent
	}
	if upd.NextDue != nil {
		set["nextDue"] = *upd.NextDue
	}
	return updateByID[models.PromiseReminder](ctx, s.col, id, set)
}
