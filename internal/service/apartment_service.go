package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/internal/repository"
)

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrNotOwner          = errors.New("apartment belongs to another realtor")
	ErrUnsupportedUnit   = errors.New("unsupported radius unit")
)

const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.34
)

type ApartmentService struct {
	apartments repository.ApartmentRepository
	blobs      repository.BlobRepository
}

func NewApartmentService(apartments repository.ApartmentRepository, blobs repository.BlobRepository) *ApartmentService {
	return &ApartmentService{apartments: apartments, blobs: blobs}
}

type CreateApartmentInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    domain.GeoPoint `json:"location"`
	Price       float64         `json:"price"`
	Bedrooms    int             `json:"bedrooms"`
	DateAdded   string          `json:"dateadded"`
	Image       []byte          `json:"image"`
}

type UpdateApartmentInput struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Location    *domain.GeoPoint `json:"location"`
	Price       *float64         `json:"price"`
	Bedrooms    *int             `json:"bedrooms"`
	Image       []byte           `json:"image"`
}

type GeoSearchInput struct {
	Radius float64 `json:"radius"`
	Unit   string  `json:"radius_unit"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Page   int64   `json:"page"`
}

// Create stores the image blob first, then the apartment record referencing
// it. A failed insert leaves the uploaded blob behind; there is no
// compensating delete.
func (s *ApartmentService) Create(ctx context.Context, input CreateApartmentInput, realtor string) (*domain.Apartment, error) {
	imageID, err := s.blobs.Add(ctx, input.Image)
	if err != nil {
		return nil, fmt.Errorf("storing image: %w", err)
	}

	apartment := &domain.Apartment{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Price:       input.Price,
		Bedrooms:    input.Bedrooms,
		DateAdded:   input.DateAdded,
		ImageID:     imageID,
		Realtor:     realtor,
	}

	created, err := s.apartments.Add(ctx, apartment)
	if err != nil {
		return nil, fmt.Errorf("creating apartment: %w", err)
	}
	return created, nil
}

func (s *ApartmentService) Get(ctx context.Context, id string) (*domain.Apartment, error) {
	apartment, err := s.apartments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if apartment == nil {
		return nil, ErrApartmentNotFound
	}
	return apartment, nil
}

// GetImage returns the image payload associated with an apartment.
func (s *ApartmentService) GetImage(ctx context.Context, id string) ([]byte, error) {
	apartment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.blobs.Get(ctx, apartment.ImageID)
}

// Update applies a merge-patch to an apartment owned by requester. When the
// patch carries a new image it is stored as a new blob and the reference is
// swapped; the previous blob stays unreferenced. An empty patch returns the
// existing record unchanged.
func (s *ApartmentService) Update(ctx context.Context, id, requester string, input UpdateApartmentInput) (*domain.Apartment, error) {
	existing, err := s.apartments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrApartmentNotFound
	}
	if existing.Realtor != requester {
		return nil, ErrNotOwner
	}

	patch := &domain.ApartmentPatch{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Price:       input.Price,
		Bedrooms:    input.Bedrooms,
	}
	if len(input.Image) > 0 {
		imageID, err := s.blobs.Add(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("storing image: %w", err)
		}
		patch.ImageID = &imageID
	}

	updated, err := s.apartments.Patch(ctx, id, patch)
	if errors.Is(err, repository.ErrEmptyUpdate) {
		return existing, nil
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrApartmentNotFound
	}
	return updated, nil
}

// Delete removes an apartment owned by requester together with its image
// blob. The blob is deleted first; a blob failure does not stop the document
// delete, so a partial failure can leave either side behind.
func (s *ApartmentService) Delete(ctx context.Context, id, requester string) error {
	existing, err := s.apartments.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrApartmentNotFound
	}
	if existing.Realtor != requester {
		return ErrNotOwner
	}

	var deleted int64
	if err := s.blobs.Delete(ctx, existing.ImageID); err == nil {
		deleted++
	}
	count, err := s.apartments.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting apartment: %w", err)
	}
	deleted += count

	if deleted == 0 {
		return ErrApartmentNotFound
	}
	return nil
}

func (s *ApartmentService) ListByRealtor(ctx context.Context, username string, page int64) ([]domain.Apartment, error) {
	return s.apartments.ListByRealtor(ctx, username, page)
}

// SearchByRadius converts the radius to meters and delegates the spherical
// distance query to the geospatial index.
func (s *ApartmentService) SearchByRadius(ctx context.Context, query GeoSearchInput) ([]domain.Apartment, error) {
	meters, err := radiusToMeters(query.Radius, query.Unit)
	if err != nil {
		return nil, err
	}
	return s.apartments.Near(ctx, query.Lon, query.Lat, meters, query.Page)
}

func radiusToMeters(radius float64, unit string) (float64, error) {
	switch unit {
	case "km":
		return radius * metersPerKilometer, nil
	case "mi":
		return radius * metersPerMile, nil
	default:
		return 0, ErrUnsupportedUnit
	}
}
