package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/internal/repository"
)

type fakeUserRepo struct {
	users []*domain.User
}

func (f *fakeUserRepo) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return nil, &repository.DuplicateKeyError{Field: "username"}
		}
		if u.Email == user.Email {
			return nil, &repository.DuplicateKeyError{Field: "email"}
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	f.users = append(f.users, &stored)
	out := stored
	return &out, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

type nearQuery struct {
	lon, lat, maxMeters float64
	page                int64
}

type fakeApartmentRepo struct {
	apartments map[string]*domain.Apartment
	lastNear   *nearQuery
}

func newFakeApartmentRepo() *fakeApartmentRepo {
	return &fakeApartmentRepo{apartments: make(map[string]*domain.Apartment)}
}

func (f *fakeApartmentRepo) Add(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	stored := *apartment
	stored.ID = primitive.NewObjectID()
	f.apartments[stored.ID.Hex()] = &stored
	out := stored
	return &out, nil
}

func (f *fakeApartmentRepo) Get(ctx context.Context, id string) (*domain.Apartment, error) {
	if apartment, ok := f.apartments[id]; ok {
		out := *apartment
		return &out, nil
	}
	return nil, nil
}

func (f *fakeApartmentRepo) Patch(ctx context.Context, id string, patch *domain.ApartmentPatch) (*domain.Apartment, error) {
	if patch.Title == nil && patch.Description == nil && patch.Location == nil &&
		patch.Price == nil && patch.Bedrooms == nil && patch.ImageID == nil {
		return nil, repository.ErrEmptyUpdate
	}
	apartment, ok := f.apartments[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		apartment.Title = *patch.Title
	}
	if patch.Description != nil {
		apartment.Description = *patch.Description
	}
	if patch.Location != nil {
		apartment.Location = *patch.Location
	}
	if patch.Price != nil {
		apartment.Price = *patch.Price
	}
	if patch.Bedrooms != nil {
		apartment.Bedrooms = *patch.Bedrooms
	}
	if patch.ImageID != nil {
		apartment.ImageID = *patch.ImageID
	}
	out := *apartment
	return &out, nil
}

func (f *fakeApartmentRepo) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := f.apartments[id]; !ok {
		return 0, nil
	}
	delete(f.apartments, id)
	return 1, nil
}

func (f *fakeApartmentRepo) ListByRealtor(ctx context.Context, username string, page int64) ([]domain.Apartment, error) {
	var out []domain.Apartment
	for _, apartment := range f.apartments {
		if apartment.Realtor == username {
			out = append(out, *apartment)
		}
	}
	return out, nil
}

func (f *fakeApartmentRepo) Near(ctx context.Context, lon, lat, maxMeters float64, page int64) ([]domain.Apartment, error) {
	f.lastNear = &nearQuery{lon: lon, lat: lat, maxMeters: maxMeters, page: page}
	return nil, nil
}

type fakeBlobRepo struct {
	blobs map[string][]byte
	next  int
}

func newFakeBlobRepo() *fakeBlobRepo {
	return &fakeBlobRepo{blobs: make(map[string][]byte)}
}

func (f *fakeBlobRepo) Add(ctx context.Context, data []byte) (string, error) {
	f.next++
	id := fmt.Sprintf("blob-%d", f.next)
	f.blobs[id] = data
	return id, nil
}

func (f *fakeBlobRepo) Get(ctx context.Context, id string) ([]byte, error) {
	data, ok := f.blobs[id]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", id)
	}
	return data, nil
}

func (f *fakeBlobRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.blobs[id]; !ok {
		return fmt.Errorf("blob %s not found", id)
	}
	delete(f.blobs, id)
	return nil
}
