package services

import (
	"fmt"
	"testing"

	"social-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileAggregatesEverything(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")
	createTestUser(t, s.db, "carol")
	group := createTestGroup(t, s.db, "Hikers")

	require.NoError(t, s.groups.JoinGroup(testCtx(), alice.ID, group.ID))
	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipAdd))
	createTestPost(t, s.db, group, alice, "Trailhead meetup")
	_, err := s.locations.CreateLocation(testCtx(), alice.ID, "Innsbruck", 47.2692, 11.4041)
	require.NoError(t, err)

	profile, err := s.profiles.GetProfile(testCtx(), alice.ID)
	require.NoError(t, err)

	assert.Equal(t, alice.ID, profile.User.ID)
	require.Len(t, profile.Groups, 1)
	assert.Equal(t, "Hikers", profile.Groups[0].Name)
	require.Len(t, profile.Posts, 1)
	require.Len(t, profile.Friends, 1)
	assert.Equal(t, bob.ID, profile.Friends[0].ID)
	require.Len(t, profile.Locations, 1)
	assert.Equal(t, "Innsbruck", profile.Locations[0].City)
	assert.Len(t, profile.AllUsers, 3)
}

func TestGetProfileWithNoFriendsIsEmptyNotError(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	profile, err := s.profiles.GetProfile(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile.Friends)
	assert.Empty(t, profile.Friends)
}

func TestGetProfileShowsAtMostSixImagesInUploadOrder(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	for i := 1; i <= 8; i++ {
		image := &models.UserImage{
			UserID:   alice.ID,
			URL:      fmt.Sprintf("/uploads/img-%d.png", i),
			Path:     fmt.Sprintf("uploads/img-%d.png", i),
			FileName: fmt.Sprintf("img-%d.png", i),
			Size:     100,
		}
		require.NoError(t, s.db.Create(image).Error)
	}

	profile, err := s.profiles.GetProfile(testCtx(), alice.ID)
	require.NoError(t, err)

	require.Len(t, profile.Images, 6)
	for i, image := range profile.Images {
		assert.Equal(t, fmt.Sprintf("img-%d.png", i+1), image.FileName)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	s := newTestServices(t)

	_, err := s.profiles.GetProfile(testCtx(), 9999)
	assert.Error(t, err)
}
