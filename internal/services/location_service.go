package services

import (
	"context"
	"fmt"

	"social-go/internal/models"
	"social-go/internal/storage"
)

var ErrLocationCityMissing = fmt.Errorf("%w: city is required", ErrValidation)

// LocationService owns user locations. A user may record any number of them.
type LocationService interface {
	CreateLocation(ctx context.Context, userID uint, city string, latitude, longitude float64) (*models.Location, error)
	EditLocation(ctx context.Context, locationID uint, city string, latitude, longitude float64) (*models.Location, error)
	ListUserLocations(ctx context.Context, userID uint) ([]*models.Location, error)
}

type locationService struct {
	locationRepo storage.LocationRepository
}

// NewLocationService creates a new LocationService instance.
func NewLocationService(locationRepo storage.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

// CreateLocation records a new location for the user.
func (s *locationService) CreateLocation(ctx context.Context, userID uint, city string, latitude, longitude float64) (*models.Location, error) {
	if city == "" {
		return nil, ErrLocationCityMissing
	}

	location := &models.Location{
		UserID:    userID,
		City:      city,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location for user %d: %w", userID, err)
	}
	return location, nil
}

// EditLocation updates an existing location row.
func (s *locationService) EditLocation(ctx context.Context, locationID uint, city string, latitude, longitude float64) (*models.Location, error) {
	if city == "" {
		return nil, ErrLocationCityMissing
	}

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	location.City = city
	location.Latitude = latitude
	location.Longitude = longitude
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location %d: %w", locationID, err)
	}
	return location, nil
}

// ListUserLocations retrieves every location the user has recorded.
func (s *locationService) ListUserLocations(ctx context.Context, userID uint) ([]*models.Location, error) {
	return s.locationRepo.ListByUser(ctx, userID)
}
