package mongodb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/internal/repository"
)

type UserRepo struct {
	docs *DocumentRepo[domain.User]
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{docs: NewDocumentRepo[domain.User](db)}
}

func (r *UserRepo) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := r.docs.Add(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &repository.DuplicateKeyError{Field: duplicateField(err)}
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.docs.GetByField(ctx, "username", username)
}

// duplicateField recovers the conflicting field from the server's duplicate
// key message, which names the violated index (e.g. "username_1").
func duplicateField(err error) string {
	msg := err.Error()
	for _, field := range []string{"username", "email"} {
		if strings.Contains(msg, field+"_1") {
			return field
		}
	}
	return "unknown"
}
