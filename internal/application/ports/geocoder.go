package ports

import (
	"context"

	"contacts-api/internal/infrastructure/geocoding"
)

// Geocoder turns a full postal address string into coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (geocoding.Location, error)
}
