package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/depotlabs/filedepot/pkg/store/record"
)

// userDoc is the wire shape of a user document. The domain type carries hex
// string ids, so conversion happens at this boundary.
type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (d *userDoc) toRecord() *record.User {
	return &record.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}

// CreateUser inserts a new user. The unique email index turns concurrent
// duplicate registrations into ErrAlreadyExists.
func (s *MongoRecordStore) CreateUser(ctx context.Context, email, passwordHash string) (*record.User, error) {
	doc := userDoc{
		Email:    email,
		Password: passwordHash,
	}

	res, err := s.db.Collection(usersCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &record.StoreError{
				Code:    record.ErrAlreadyExists,
				Message: "Already exist",
			}
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return &record.User{
		ID:           id.Hex(),
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// FindUserByEmail returns the user registered with the given email.
func (s *MongoRecordStore) FindUserByEmail(ctx context.Context, email string) (*record.User, error) {
	var doc userDoc
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &record.StoreError{
			Code:    record.ErrNotFound,
			Message: "user not found",
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return doc.toRecord(), nil
}

// FindUserByID returns the user with the given hex id. A malformed id is
// reported as not found.
func (s *MongoRecordStore) FindUserByID(ctx context.Context, id string) (*record.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &record.StoreError{
			Code:    record.ErrNotFound,
			Message: "user not found",
		}
	}

	var doc userDoc
	err = s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &record.StoreError{
			Code:    record.ErrNotFound,
			Message: "user not found",
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return doc.toRecord(), nil
}

// CountUsers returns the total number of registered users.
func (s *MongoRecordStore) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(usersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
