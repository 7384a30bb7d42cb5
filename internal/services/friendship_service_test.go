package services

import (
	"testing"

	"social-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFriendshipAddIsSymmetric(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipAdd))

	aliceFriends, err := s.friendships.GetFriendsList(testCtx(), alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := s.friendships.GetFriendsList(testCtx(), bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)

	areFriends, err := s.friendships.AreFriends(testCtx(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, areFriends)
}

func TestChangeFriendshipAddIsIdempotent(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipAdd))
	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipAdd))
	// Adding from the other side hits the same edge.
	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), bob.ID, alice.ID, FriendshipAdd))

	var count int64
	require.NoError(t, s.db.Model(&models.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestChangeFriendshipRejectsSelf(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	err := s.friendships.ChangeFriendship(testCtx(), alice.ID, alice.ID, FriendshipAdd)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangeFriendshipUnknownTarget(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	err := s.friendships.ChangeFriendship(testCtx(), alice.ID, 9999, FriendshipAdd)
	assert.ErrorIs(t, err, ErrFriendUserMissing)
}

func TestChangeFriendshipRejectsUnknownOp(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	err := s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipOp("block"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangeFriendshipRemove(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipAdd))
	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipRemove))

	aliceFriends, err := s.friendships.GetFriendsList(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := s.friendships.GetFriendsList(testCtx(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)

	// No trace of the pair remains.
	var count int64
	require.NoError(t, s.db.Unscoped().Model(&models.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestChangeFriendshipRemoveMissingIsNoOp(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	assert.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipRemove))
}

func TestGetFriendsListEmptyIsNotAnError(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	friends, err := s.friendships.GetFriendsList(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
}
