package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgarceron/toptal-project/internal/domain"
)

func apartmentInput() CreateApartmentInput {
	return CreateApartmentInput{
		Title:       "Cozy studio",
		Description: "Close to the river",
		Location: domain.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{4.3517, 50.8503},
		},
		Price:     950,
		Bedrooms:  1,
		DateAdded: "2024-05-01",
		Image:     []byte("fake-image-bytes"),
	}
}

func newApartmentFixture() (*ApartmentService, *fakeApartmentRepo, *fakeBlobRepo) {
	apartments := newFakeApartmentRepo()
	blobs := newFakeBlobRepo()
	return NewApartmentService(apartments, blobs), apartments, blobs
}

func TestCreateStoresImageThenRecord(t *testing.T) {
	svc, _, blobs := newApartmentFixture()

	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", created.Realtor)
	assert.NotEmpty(t, created.ImageID)
	assert.Equal(t, []byte("fake-image-bytes"), blobs.blobs[created.ImageID])
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newApartmentFixture()

	_, err := svc.Get(context.Background(), "66b1f0000000000000000000")
	assert.ErrorIs(t, err, ErrApartmentNotFound)
}

func TestUpdateByNonOwnerForbidden(t *testing.T) {
	svc, _, _ := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), created.ID.Hex(), "bob", UpdateApartmentInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateMissingApartment(t *testing.T) {
	svc, _, _ := newApartmentFixture()

	title := "Anything"
	_, err := svc.Update(context.Background(), "66b1f0000000000000000000", "alice", UpdateApartmentInput{Title: &title})
	assert.ErrorIs(t, err, ErrApartmentNotFound)
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	svc, apartments, _ := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(), "alice", UpdateApartmentInput{})
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	stored, err := apartments.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, *created, *stored)
}

func TestUpdateAppliesPatch(t *testing.T) {
	svc, _, _ := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	title := "Renovated studio"
	price := 1100.0
	updated, err := svc.Update(context.Background(), created.ID.Hex(), "alice", UpdateApartmentInput{Title: &title, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Renovated studio", updated.Title)
	assert.Equal(t, 1100.0, updated.Price)
	assert.Equal(t, created.Description, updated.Description)
}

func TestUpdateReplacesImageLeavingOldBlob(t *testing.T) {
	svc, _, blobs := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(), "alice", UpdateApartmentInput{Image: []byte("new-image")})
	require.NoError(t, err)

	assert.NotEqual(t, created.ImageID, updated.ImageID)
	assert.Equal(t, []byte("new-image"), blobs.blobs[updated.ImageID])
	// The replaced blob is left behind; nothing reclaims it.
	assert.Contains(t, blobs.blobs, created.ImageID)
}

func TestDeleteByNonOwnerForbidden(t *testing.T) {
	svc, _, _ := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID.Hex(), "bob")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeleteRemovesBlobAndDocument(t *testing.T) {
	svc, _, blobs := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex(), "alice"))

	assert.NotContains(t, blobs.blobs, created.ImageID)
	_, err = svc.Get(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, ErrApartmentNotFound)
}

func TestListByRealtorFiltersOwner(t *testing.T) {
	svc, _, _ := newApartmentFixture()
	_, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), apartmentInput(), "bob")
	require.NoError(t, err)

	listed, err := svc.ListByRealtor(context.Background(), "alice", 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "alice", listed[0].Realtor)
}

func TestSearchRadiusConversion(t *testing.T) {
	svc, apartments, _ := newApartmentFixture()

	_, err := svc.SearchByRadius(context.Background(), GeoSearchInput{Radius: 5, Unit: "km", Lat: 50.8503, Lon: 4.3517, Page: 1})
	require.NoError(t, err)
	require.NotNil(t, apartments.lastNear)
	assert.Equal(t, 5000.0, apartments.lastNear.maxMeters)
	assert.Equal(t, 4.3517, apartments.lastNear.lon)
	assert.Equal(t, 50.8503, apartments.lastNear.lat)

	// The same distance expressed in miles must produce the same cutoff.
	_, err = svc.SearchByRadius(context.Background(), GeoSearchInput{Radius: 5 * 0.621371, Unit: "mi", Lat: 50.8503, Lon: 4.3517, Page: 1})
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, apartments.lastNear.maxMeters, 1.0)
}

func TestSearchUnsupportedUnit(t *testing.T) {
	svc, _, _ := newApartmentFixture()

	_, err := svc.SearchByRadius(context.Background(), GeoSearchInput{Radius: 5, Unit: "furlong", Lat: 0, Lon: 0, Page: 1})
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestGetImage(t *testing.T) {
	svc, _, _ := newApartmentFixture()
	created, err := svc.Create(context.Background(), apartmentInput(), "alice")
	require.NoError(t, err)

	data, err := svc.GetImage(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-image-bytes"), data)
}
