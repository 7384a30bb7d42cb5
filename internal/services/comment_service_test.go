package services

import (
	"testing"

	"social-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequiresBody(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")
	post := createTestPost(t, s.db, group, alice, "Meetup")

	_, err := s.comments.CreateComment(testCtx(), post.ID, alice.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, s.db.Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateCommentTakesGroupFromPost(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")
	group := createTestGroup(t, s.db, "Hikers")
	post := createTestPost(t, s.db, group, alice, "Meetup")

	comment, err := s.comments.CreateComment(testCtx(), post.ID, bob.ID, "count me in")
	require.NoError(t, err)

	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, group.ID, comment.GroupID)
	assert.Equal(t, bob.ID, comment.AuthorID)
	assert.False(t, comment.PubDate.IsZero())
}

func TestCreateCommentUnknownPost(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")

	_, err := s.comments.CreateComment(testCtx(), 9999, alice.ID, "hello")
	assert.Error(t, err)
}

func TestDeleteComment(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")
	post := createTestPost(t, s.db, group, alice, "Meetup")

	comment, err := s.comments.CreateComment(testCtx(), post.ID, alice.ID, "first")
	require.NoError(t, err)

	require.NoError(t, s.comments.DeleteComment(testCtx(), comment.ID))

	var count int64
	require.NoError(t, s.db.Unscoped().Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// The post is untouched.
	_, err = s.posts.GetPost(testCtx(), post.ID)
	assert.NoError(t, err)
}
