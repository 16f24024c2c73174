package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) SessionInsert(ctx context.Context, sess model.Session) (id string, err error) {
	sess.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionSessions).InsertOne(ctx, sess)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Session with title: %s", sess.Title)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) SessionFindOne(ctx context.Context, sessionID string) (model.Session, error) {
	var sess model.Session
	objID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return sess, errors.Wrapf(err, "error creating ObjectID from hex: %s", sessionID)
	}
	err = db.Collection(CollectionSessions).FindOne(ctx, bson.M{"_id": objID}).Decode(&sess)
	return sess, errors.Wrapf(err, "error finding Session with ID: %s", sessionID)
}

func (db Database) SessionsFindByStatuses(ctx context.Context, statuses []model.SessionStatus) ([]model.Session, error) {
	var ss []model.Session
	cur, err := db.Collection(CollectionSessions).Find(ctx, bson.M{"status": bson.M{"$in": statuses}})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Sessions with statuses: %v", statuses)
	}
	if err = cur.All(ctx, &ss); err != nil {
		return nil, errors.Wrapf(err, "error getting Sessions from cursor, statuses: %v", statuses)
	}
	return ss, nil
}

func (db Database) SessionsFindByTutor(ctx context.Context, tutorEmail string) ([]model.Session, error) {
	var ss []model.Session
	cur, err := db.Collection(CollectionSessions).Find(ctx, bson.M{"tutorEmail": tutorEmail})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Sessions of tutor: %s", tutorEmail)
	}
	if err = cur.All(ctx, &ss); err != nil {
		return nil, errors.Wrapf(err, "error getting Sessions from cursor, tutor: %s", tutorEmail)
	}
	return ss, nil
}

func (db Database) SessionsFindApprovedByTutor(ctx context.Context, tutorEmail string) ([]model.Session, error) {
	var ss []model.Session
	cur, err := db.Collection(CollectionSessions).Find(ctx, bson.M{
		"status":     model.SessionStatusApproved,
		"tutorEmail": tutorEmail,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find approved Sessions of tutor: %s", tutorEmail)
	}
	if err = cur.All(ctx, &ss); err != nil {
		return nil, errors.Wrapf(err, "error getting approved Sessions from cursor, tutor: %s", tutorEmail)
	}
	return ss, nil
}

// SessionApprove sets status to approved and records the fee in one update.
func (db Database) SessionApprove(ctx context.Context, sessionID string, fee float64) (model.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", sessionID)
	}

	res, err := db.Collection(CollectionSessions).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"status": model.SessionStatusApproved,
			"fee":    fee,
		}},
	)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error approving Session with ID: %s", sessionID)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (db Database) SessionStatusSet(ctx context.Context, sessionID string, status model.SessionStatus) (model.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", sessionID)
	}

	res, err := db.Collection(CollectionSessions).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error setting status %s on Session with ID: %s", status, sessionID)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
