package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) NoteInsert(ctx context.Context, n model.Note) (id string, err error) {
	n.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionNotes).InsertOne(ctx, n)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Note for user: %s", n.UserEmail)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) NotesFindByUser(ctx context.Context, userEmail string) ([]model.Note, error) {
	var ns []model.Note
	cur, err := db.Collection(CollectionNotes).Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Notes of user: %s", userEmail)
	}
	if err = cur.All(ctx, &ns); err != nil {
		return nil, errors.Wrapf(err, "error getting Notes from cursor, user: %s", userEmail)
	}
	return ns, nil
}

func (db Database) NoteUpdate(ctx context.Context, noteID string, title string, note string) (model.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", noteID)
	}

	res, err := db.Collection(CollectionNotes).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"title": title,
			"note":  note,
		}},
	)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error updating Note with ID: %s", noteID)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (db Database) NoteDelete(ctx context.Context, noteID string) (model.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return model.DeleteResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", noteID)
	}

	res, err := db.Collection(CollectionNotes).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return model.DeleteResult{}, errors.Wrapf(err, "error deleting Note with ID: %s", noteID)
	}
	return model.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}
