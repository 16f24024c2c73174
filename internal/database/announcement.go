package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (db Database) AnnouncementInsert(ctx context.Context, a model.Announcement) (id string, err error) {
	a.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionAnnouncements).InsertOne(ctx, a)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Announcement with title: %s", a.Title)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) AnnouncementsFindAll(ctx context.Context) ([]model.Announcement, error) {
	var as []model.Announcement
	cur, err := db.Collection(CollectionAnnouncements).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "error getting cursor to find all Announcements")
	}
	if err = cur.All(ctx, &as); err != nil {
		return nil, errors.Wrap(err, "error getting all Announcements from cursor")
	}
	return as, nil
}
