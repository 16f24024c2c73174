package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) BookedSessionInsert(ctx context.Context, bs model.BookedSession) (id string, err error) {
	bs.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionBookedSessions).InsertOne(ctx, bs)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting BookedSession for student: %s, SessionID: %s", bs.StudentEmail, bs.SessionID)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) BookedSessionsFindByStudent(ctx context.Context, studentEmail string) ([]model.BookedSession, error) {
	var bss []model.BookedSession
	cur, err := db.Collection(CollectionBookedSessions).Find(ctx, bson.M{"studentEmail": studentEmail})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find BookedSessions of student: %s", studentEmail)
	}
	if err = cur.All(ctx, &bss); err != nil {
		return nil, errors.Wrapf(err, "error getting BookedSessions from cursor, student: %s", studentEmail)
	}
	return bss, nil
}

func (db Database) BookedSessionFindOne(ctx context.Context, bookedSessionID string) (model.BookedSession, error) {
	var bs model.BookedSession
	objID, err := primitive.ObjectIDFromHex(bookedSessionID)
	if err != nil {
		return bs, errors.Wrapf(err, "error creating ObjectID from hex: %s", bookedSessionID)
	}
	err = db.Collection(CollectionBookedSessions).FindOne(ctx, bson.M{"_id": objID}).Decode(&bs)
	return bs, errors.Wrapf(err, "error finding BookedSession with ID: %s", bookedSessionID)
}
