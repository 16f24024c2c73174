package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) MaterialInsert(ctx context.Context, m model.Material) (id string, err error) {
	m.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionMaterials).InsertOne(ctx, m)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Material for SessionID: %s", m.SessionID)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) MaterialsFindByTutor(ctx context.Context, tutorEmail string) ([]model.Material, error) {
	var ms []model.Material
	cur, err := db.Collection(CollectionMaterials).Find(ctx, bson.M{"tutorEmail": tutorEmail})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Materials of tutor: %s", tutorEmail)
	}
	if err = cur.All(ctx, &ms); err != nil {
		return nil, errors.Wrapf(err, "error getting Materials from cursor, tutor: %s", tutorEmail)
	}
	return ms, nil
}

func (db Database) MaterialsFindAll(ctx context.Context) ([]model.Material, error) {
	var ms []model.Material
	cur, err := db.Collection(CollectionMaterials).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "error getting cursor to find all Materials")
	}
	if err = cur.All(ctx, &ms); err != nil {
		return nil, errors.Wrap(err, "error getting all Materials from cursor")
	}
	return ms, nil
}

// MaterialsFindBySessions selects Materials whose sessionId is in the given
// set, for the course materials a student has booked.
func (db Database) MaterialsFindBySessions(ctx context.Context, sessionIDs []string) ([]model.Material, error) {
	var ms []model.Material
	cur, err := db.Collection(CollectionMaterials).Find(ctx, bson.M{"sessionId": bson.M{"$in": sessionIDs}})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Materials with SessionIDs: %v", sessionIDs)
	}
	if err = cur.All(ctx, &ms); err != nil {
		return nil, errors.Wrapf(err, "error getting Materials from cursor, SessionIDs: %v", sessionIDs)
	}
	return ms, nil
}

func (db Database) MaterialUpdate(ctx context.Context, materialID string, title string, image string, driveLink string) (model.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(materialID)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", materialID)
	}

	res, err := db.Collection(CollectionMaterials).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"title":     title,
			"image":     image,
			"driveLink": driveLink,
		}},
	)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error updating Material with ID: %s", materialID)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (db Database) MaterialDelete(ctx context.Context, materialID string) (model.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(materialID)
	if err != nil {
		return model.DeleteResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", materialID)
	}

	res, err := db.Collection(CollectionMaterials).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return model.DeleteResult{}, errors.Wrapf(err, "error deleting Material with ID: %s", materialID)
	}
	return model.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}
