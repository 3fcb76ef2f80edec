package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/depotlabs/filedepot/pkg/store/record"
)

// fileDoc is the wire shape of a file metadata document.
//
// OwnerID and ParentID are stored as strings: the owner id is the hex form of
// the user's ObjectID, and the parent id is either a file's hex ObjectID or
// the literal root sentinel "0".
type fileDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"userId"`
	Name      string             `bson:"name"`
	Kind      string             `bson:"type"`
	ParentID  string             `bson:"parentId"`
	IsPublic  bool               `bson:"isPublic"`
	CreatedAt time.Time          `bson:"createdAt"`
	LocalPath string             `bson:"localPath,omitempty"`
}

func (d *fileDoc) toRecord() *record.File {
	return &record.File{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Kind:        record.Kind(d.Kind),
		ParentID:    d.ParentID,
		IsPublic:    d.IsPublic,
		CreatedAt:   d.CreatedAt,
		StoragePath: d.LocalPath,
	}
}

var errFileNotFound = &record.StoreError{
	Code:    record.ErrNotFound,
	Message: "file not found",
}

// InsertFile inserts a file metadata record and returns it with its
// generated id.
func (s *MongoRecordStore) InsertFile(ctx context.Context, file *record.File) (*record.File, error) {
	doc := fileDoc{
		OwnerID:   file.OwnerID,
		Name:      file.Name,
		Kind:      string(file.Kind),
		ParentID:  file.ParentID,
		IsPublic:  file.IsPublic,
		CreatedAt: file.CreatedAt,
		LocalPath: file.StoragePath,
	}

	res, err := s.db.Collection(filesCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert file record: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	inserted := *file
	inserted.ID = id.Hex()
	return &inserted, nil
}

// FindFileByID returns the file record with the given hex id. A malformed id
// is reported as not found.
func (s *MongoRecordStore) FindFileByID(ctx context.Context, id string) (*record.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errFileNotFound
	}

	var doc fileDoc
	err = s.db.Collection(filesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find file by id: %w", err)
	}

	return doc.toRecord(), nil
}

// ListFiles returns one page of records owned by ownerID under parentID,
// using a match/skip/limit aggregation in the collection's natural order.
func (s *MongoRecordStore) ListFiles(ctx context.Context, ownerID, parentID string, page, pageSize int64) ([]record.File, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": ownerID, "parentId": parentID}}},
		bson.D{{Key: "$skip", Value: page * pageSize}},
		bson.D{{Key: "$limit", Value: pageSize}},
	}

	cursor, err := s.db.Collection(filesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	files := []record.File{}
	for cursor.Next(ctx) {
		var doc fileDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode file record: %w", err)
		}
		files = append(files, *doc.toRecord())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate file records: %w", err)
	}

	return files, nil
}

// SetFileVisibility patches the isPublic flag and returns the updated record.
func (s *MongoRecordStore) SetFileVisibility(ctx context.Context, id string, isPublic bool) (*record.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errFileNotFound
	}

	res, err := s.db.Collection(filesCollection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isPublic": isPublic}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update file visibility: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, errFileNotFound
	}

	return s.FindFileByID(ctx, id)
}

// CountFiles returns the total number of file records.
func (s *MongoRecordStore) CountFiles(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(filesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return count, nil
}
