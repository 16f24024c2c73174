package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) FeedbackInsert(ctx context.Context, f model.Feedback) (id string, err error) {
	f.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionFeedbacks).InsertOne(ctx, f)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Feedback for SessionID: %s", f.SessionID)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FeedbackFindLatest returns the most recently inserted Feedback for the
// session, using descending _id as the recency order.
func (db Database) FeedbackFindLatest(ctx context.Context, sessionID string) (model.Feedback, error) {
	var f model.Feedback
	err := db.Collection(CollectionFeedbacks).FindOne(
		ctx,
		bson.M{"sessionId": sessionID},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}),
	).Decode(&f)
	return f, errors.Wrapf(err, "error finding latest Feedback for SessionID: %s", sessionID)
}
