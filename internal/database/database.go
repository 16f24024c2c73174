package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Name                     = "synaps"
	CollectionUsers          = "users"
	CollectionSessions       = "sessions"
	CollectionFeedbacks      = "feedbacks"
	CollectionMaterials      = "materials"
	CollectionBookedSessions = "bookedSessions"
	CollectionReviews        = "reviews"
	CollectionNotes          = "notes"
	CollectionAnnouncements  = "announcements"
)

type Database struct {
	*mongo.Database
}

var ErrUserExists = errors.New("user already exists")

func ConnectDB(ctx context.Context, dbURI string) (*mongo.Client, error) {
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(dbURI))
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionUsers).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionSessions).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "tutorEmail", Value: 1}}},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionFeedbacks).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "sessionId", Value: 1},
				{Key: "_id", Value: -1},
			},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionMaterials).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{Keys: bson.D{{Key: "tutorEmail", Value: 1}}},
			{Keys: bson.D{{Key: "sessionId", Value: 1}}},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionBookedSessions).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{Keys: bson.D{{Key: "studentEmail", Value: 1}}},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionReviews).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{Keys: bson.D{{Key: "sessionId", Value: 1}}},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionNotes).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{Keys: bson.D{{Key: "userEmail", Value: 1}}},
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}
