package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgarceron/toptal-project/internal/domain"
)

// ErrInvalidID is returned when an identifier is not a valid document reference.
var ErrInvalidID = errors.New("invalid document id")

// ErrEmptyUpdate is returned when a merge-patch carries no fields. It signals
// a no-op, not a failure; the stored document is never touched.
var ErrEmptyUpdate = errors.New("update contains no fields")

// DuplicateKeyError reports a unique-index violation and which field caused it.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for field %q", e.Field)
}

// Lookups return (nil, nil) when no document matches.

type UserRepository interface {
	Add(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ApartmentRepository interface {
	Add(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	Get(ctx context.Context, id string) (*domain.Apartment, error)
	Patch(ctx context.Context, id string, patch *domain.ApartmentPatch) (*domain.Apartment, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListByRealtor(ctx context.Context, username string, page int64) ([]domain.Apartment, error)
	Near(ctx context.Context, lon, lat, maxMeters float64, page int64) ([]domain.Apartment, error)
}

type BlobRepository interface {
	Add(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
