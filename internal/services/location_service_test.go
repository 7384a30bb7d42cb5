package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocationRequiresCity(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	_, err := s.locations.CreateLocation(testCtx(), alice.ID, "", 47.0, 11.0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserMayHaveMultipleLocations(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	_, err := s.locations.CreateLocation(testCtx(), alice.ID, "Innsbruck", 47.2692, 11.4041)
	require.NoError(t, err)
	_, err = s.locations.CreateLocation(testCtx(), alice.ID, "Vienna", 48.2082, 16.3738)
	require.NoError(t, err)

	locations, err := s.locations.ListUserLocations(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}

func TestEditLocation(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	location, err := s.locations.CreateLocation(testCtx(), alice.ID, "Innsbruck", 47.2692, 11.4041)
	require.NoError(t, err)

	edited, err := s.locations.EditLocation(testCtx(), location.ID, "Salzburg", 47.8095, 13.0550)
	require.NoError(t, err)
	assert.Equal(t, "Salzburg", edited.City)
	assert.InDelta(t, 47.8095, edited.Latitude, 0.0001)

	_, err = s.locations.EditLocation(testCtx(), 9999, "Nowhere", 0, 0)
	assert.Error(t, err)
}
