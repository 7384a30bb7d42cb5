package services

import (
	"testing"
	"time"

	"social-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequiresTitleAndBody(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	_, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "", "some body")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.posts.CreatePost(testCtx(), group.ID, alice.ID, "some title", "")
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, s.db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "rejected posts must not leave rows behind")
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	hikers := createTestGroup(t, s.db, "Hikers")
	bakers := createTestGroup(t, s.db, "Bakers")

	_, err := s.posts.CreatePost(testCtx(), hikers.ID, alice.ID, "Meetup", "in the hills")
	require.NoError(t, err)

	// Titles are unique across all groups, not per group.
	_, err = s.posts.CreatePost(testCtx(), bakers.ID, alice.ID, "Meetup", "at the bakery")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestCreatePostUnknownGroup(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	_, err := s.posts.CreatePost(testCtx(), 9999, alice.ID, "Meetup", "body")
	assert.Error(t, err)
}

func TestCreatePostSetsDefaults(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	before := time.Now().Add(-time.Second)
	post, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "Meetup", "body")
	require.NoError(t, err)

	assert.Equal(t, 0, post.LikesTotal)
	assert.Equal(t, alice.ID, post.AuthorID)
	assert.Equal(t, group.ID, post.GroupID)
	assert.True(t, post.PubDate.After(before))
}

func TestLikePostCountsEachUserOnce(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")
	group := createTestGroup(t, s.db, "Hikers")
	post := createTestPost(t, s.db, group, alice, "Trailhead meetup")

	liked, err := s.posts.LikePost(testCtx(), bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesTotal)

	// The second like is a pure no-op.
	liked, err = s.posts.LikePost(testCtx(), bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesTotal)

	likerIDs, err := s.posts.GetLikerIDs(testCtx(), post.ID)
	require.NoError(t, err)
	require.Len(t, likerIDs, 1)
	assert.Equal(t, bob.ID, likerIDs[0])
}

func TestLikePostCounterMatchesLikersSet(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")
	carol := createTestUser(t, s.db, "carol")
	group := createTestGroup(t, s.db, "Hikers")
	post := createTestPost(t, s.db, group, alice, "Trailhead meetup")

	for _, userID := range []uint{alice.ID, bob.ID, carol.ID, bob.ID} {
		_, err := s.posts.LikePost(testCtx(), userID, post.ID)
		require.NoError(t, err)
	}

	reloaded, err := s.posts.GetPost(testCtx(), post.ID)
	require.NoError(t, err)

	var setSize int64
	require.NoError(t, s.db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&setSize).Error)
	assert.EqualValues(t, reloaded.LikesTotal, setSize)
	assert.Equal(t, 3, reloaded.LikesTotal)
}

func TestLikePostUnknownPost(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	_, err := s.posts.LikePost(testCtx(), alice.ID, 9999)
	assert.Error(t, err)
}

func TestEditPostKeepsAuthorAndRefreshesPubDate(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	post, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "Meetup", "original body")
	require.NoError(t, err)
	originalPubDate := post.PubDate

	time.Sleep(10 * time.Millisecond)
	edited, err := s.posts.EditPost(testCtx(), post.ID, "Meetup (updated)", "new body")
	require.NoError(t, err)

	assert.Equal(t, alice.ID, edited.AuthorID)
	assert.Equal(t, "Meetup (updated)", edited.Title)
	assert.Equal(t, "new body", edited.Body)
	assert.True(t, edited.PubDate.After(originalPubDate))
}

func TestEditPostRejectsTakenTitle(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	_, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "First", "body")
	require.NoError(t, err)
	second, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "Second", "body two")
	require.NoError(t, err)

	_, err = s.posts.EditPost(testCtx(), second.ID, "First", "body two")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Re-submitting the post's own title is fine.
	_, err = s.posts.EditPost(testCtx(), second.ID, "Second", "edited body")
	assert.NoError(t, err)
}

func TestDeletePostCascadesCommentsAndLikes(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")
	group := createTestGroup(t, s.db, "Hikers")
	post := createTestPost(t, s.db, group, alice, "Trailhead meetup")

	_, err := s.comments.CreateComment(testCtx(), post.ID, bob.ID, "count me in")
	require.NoError(t, err)
	_, err = s.posts.LikePost(testCtx(), bob.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, s.posts.DeletePost(testCtx(), post.ID))

	var comments, likes int64
	require.NoError(t, s.db.Unscoped().Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error)
	require.NoError(t, s.db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	assert.EqualValues(t, 0, comments)
	assert.EqualValues(t, 0, likes)
}

// The Hikers scenario: two users, one group, a post, likes and comments, and
// finally a remove that takes the friendship apart again.
func TestGroupLifecycleScenario(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	group, err := s.groups.CreateGroup(testCtx(), "Hikers", "weekend hiking", "/uploads/hikers.png")
	require.NoError(t, err)

	require.NoError(t, s.groups.JoinGroup(testCtx(), alice.ID, group.ID))
	require.NoError(t, s.groups.JoinGroup(testCtx(), bob.ID, group.ID))
	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), alice.ID, bob.ID, FriendshipAdd))

	post, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "Trailhead meetup", "Saturday at 9")
	require.NoError(t, err)

	_, err = s.posts.LikePost(testCtx(), bob.ID, post.ID)
	require.NoError(t, err)
	_, err = s.comments.CreateComment(testCtx(), post.ID, bob.ID, "See you there")
	require.NoError(t, err)

	reloaded, err := s.posts.GetPost(testCtx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.LikesTotal)

	comments, err := s.comments.ListPostComments(testCtx(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, group.ID, comments[0].GroupID)

	require.NoError(t, s.friendships.ChangeFriendship(testCtx(), bob.ID, alice.ID, FriendshipRemove))
	aliceFriends, err := s.friendships.GetFriendsList(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)
}
