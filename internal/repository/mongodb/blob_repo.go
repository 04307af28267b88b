package mongodb

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// BlobRepo stores opaque binary payloads in a GridFS bucket, keyed by a
// freshly generated identifier. No link to any document collection is kept.
type BlobRepo struct {
	bucket *gridfs.Bucket
}

func NewBlobRepo(db *mongo.Database) (*BlobRepo, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &BlobRepo{bucket: bucket}, nil
}

func (r *BlobRepo) Add(ctx context.Context, data []byte) (string, error) {
	id := uuid.NewString()
	if err := r.bucket.UploadFromStreamWithID(id, id, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return id, nil
}

func (r *BlobRepo) Get(ctx context.Context, id string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := r.bucket.DownloadToStream(id, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *BlobRepo) Delete(ctx context.Context, id string) error {
	return r.bucket.Delete(id)
}
