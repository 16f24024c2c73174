package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakib928/synaps-server/internal/model"
)

// UserInsert returns ErrUserExists when a User with the same email is
// already stored, leaving the existing document untouched.
func (db Database) UserInsert(ctx context.Context, u model.User) (id string, err error) {
	err = db.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", errors.Wrapf(err, "error trying to find existing User with email: %s", u.Email)
	}

	u.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionUsers).InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUserExists
		}
		return "", errors.Wrapf(err, "error inserting User with email: %s", u.Email)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) UserFindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := db.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, errors.Wrapf(err, "error finding User with email: %s", email)
}

func (db Database) UsersFindAll(ctx context.Context) ([]model.User, error) {
	var us []model.User
	cur, err := db.Collection(CollectionUsers).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "error getting cursor to find all Users")
	}
	if err = cur.All(ctx, &us); err != nil {
		return nil, errors.Wrap(err, "error getting all Users from cursor")
	}
	return us, nil
}

// UsersSearch matches name or email by exact equality. An empty search
// string returns every User.
func (db Database) UsersSearch(ctx context.Context, search string) ([]model.User, error) {
	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"name": search},
			bson.M{"email": search},
		}}
	}
	var us []model.User
	cur, err := db.Collection(CollectionUsers).Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to search Users with: %s", search)
	}
	if err = cur.All(ctx, &us); err != nil {
		return nil, errors.Wrapf(err, "error getting Users from cursor, search: %s", search)
	}
	return us, nil
}

func (db Database) UsersFindByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var us []model.User
	cur, err := db.Collection(CollectionUsers).Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, errors.Wrapf(err, "error getting cursor to find Users with role: %s", role)
	}
	if err = cur.All(ctx, &us); err != nil {
		return nil, errors.Wrapf(err, "error getting Users from cursor, role: %s", role)
	}
	return us, nil
}

func (db Database) UserRoleUpdate(ctx context.Context, userID string, role model.Role) (model.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error creating ObjectID from hex: %s", userID)
	}

	res, err := db.Collection(CollectionUsers).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return model.UpdateResult{}, errors.Wrapf(err, "error updating role to %s on User with ID: %s", role, userID)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
