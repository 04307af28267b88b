package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edgarceron/toptal-project/internal/repository"
)

const pageSize = 100

// Document associates a record type with its collection name.
type Document interface {
	Collection() string
}

// DocumentRepo provides generic CRUD over a single collection. The client
// pool behind db is created once at startup and borrowed per operation.
type DocumentRepo[T Document] struct {
	db *mongo.Database
}

func NewDocumentRepo[T Document](db *mongo.Database) *DocumentRepo[T] {
	return &DocumentRepo[T]{db: db}
}

func (r *DocumentRepo[T]) collection() *mongo.Collection {
	var zero T
	return r.db.Collection(zero.Collection())
}

// Add inserts the document and returns the stored copy, including its
// generated id. Duplicate-key failures from unique indexes surface as-is.
func (r *DocumentRepo[T]) Add(ctx context.Context, doc *T) (*T, error) {
	coll := r.collection()
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	var created T
	if err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DocumentRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *DocumentRepo[T]) GetByField(ctx context.Context, field string, value any) (*T, error) {
	return r.findOne(ctx, bson.M{field: value})
}

func (r *DocumentRepo[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := r.collection().FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepo[T]) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repository.ErrInvalidID
	}
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindOneAndUpdate applies the non-nil fields of partial as an atomic
// merge-patch and returns the post-update document, or (nil, nil) when the
// id matches nothing. An all-nil partial returns ErrEmptyUpdate without
// touching the database.
func (r *DocumentRepo[T]) FindOneAndUpdate(ctx context.Context, id string, partial any) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	set, err := setDocument(partial)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, repository.ErrEmptyUpdate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	err = r.collection().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Filter returns page (1-indexed) of documents matching query, in the
// database's natural query order.
func (r *DocumentRepo[T]) Filter(ctx context.Context, query any, page int64) ([]T, error) {
	opts := options.Find().SetSkip((page - 1) * pageSize).SetLimit(pageSize)
	cur, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// setDocument flattens a partial document into a $set payload. Nil pointer
// fields are dropped by their omitempty tags.
func setDocument(partial any) (bson.M, error) {
	raw, err := bson.Marshal(partial)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}
