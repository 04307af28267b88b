package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edgarceron/toptal-project/internal/domain"
)

type ApartmentRepo struct {
	docs *DocumentRepo[domain.Apartment]
}

func NewApartmentRepo(db *mongo.Database) *ApartmentRepo {
	return &ApartmentRepo{docs: NewDocumentRepo[domain.Apartment](db)}
}

func (r *ApartmentRepo) Add(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	return r.docs.Add(ctx, apartment)
}

func (r *ApartmentRepo) Get(ctx context.Context, id string) (*domain.Apartment, error) {
	return r.docs.Get(ctx, id)
}

func (r *ApartmentRepo) Patch(ctx context.Context, id string, patch *domain.ApartmentPatch) (*domain.Apartment, error) {
	return r.docs.FindOneAndUpdate(ctx, id, patch)
}

func (r *ApartmentRepo) Delete(ctx context.Context, id string) (int64, error) {
	return r.docs.Delete(ctx, id)
}

func (r *ApartmentRepo) ListByRealtor(ctx context.Context, username string, page int64) ([]domain.Apartment, error) {
	return r.docs.Filter(ctx, bson.M{"realtor": username}, page)
}

// Near returns apartments within maxMeters of (lon, lat), closest first.
// Distance is computed by the 2dsphere index on the location field.
func (r *ApartmentRepo) Near(ctx context.Context, lon, lat, maxMeters float64, page int64) ([]domain.Apartment, error) {
	return r.docs.Filter(ctx, nearFilter(lon, lat, maxMeters), page)
}

func nearFilter(lon, lat, maxMeters float64) bson.M {
	return bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lon, lat},
				},
				"$maxDistance": maxMeters,
			},
		},
	}
}
