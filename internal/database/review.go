package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) ReviewInsert(ctx context.Context, rv model.Review) (id string, err error) {
	rv.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionReviews).InsertOne(ctx, rv)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Review for SessionID: %s", rv.SessionID)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) ReviewsFindBySession(ctx context.Context, sessionID string) ([]model.Review, error) {
	var rvs []model.Review
	cur, err := db.Collection(CollectionReviews).Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Reviews for SessionID: %s", sessionID)
	}
	if err = cur.All(ctx, &rvs); err != nil {
		return nil, errors.Wrapf(err, "error getting Reviews from cursor, SessionID: %s", sessionID)
	}
	return rvs, nil
}
