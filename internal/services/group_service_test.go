package services

import (
	"testing"

	"social-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroupRequiresAllFields(t *testing.T) {
	s := newTestServices(t)

	cases := []struct {
		name, groupName, description, imageURL string
	}{
		{"missing name", "", "desc", "/img.png"},
		{"missing description", "Hikers", "", "/img.png"},
		{"missing image", "Hikers", "desc", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.groups.CreateGroup(testCtx(), tc.groupName, tc.description, tc.imageURL)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	var count int64
	require.NoError(t, s.db.Model(&models.Group{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no group row may exist after rejected creations")
}

func TestCreateGroupDuplicateName(t *testing.T) {
	s := newTestServices(t)

	_, err := s.groups.CreateGroup(testCtx(), "Hikers", "hiking club", "/hikers.png")
	require.NoError(t, err)

	_, err = s.groups.CreateGroup(testCtx(), "Hikers", "another hiking club", "/other.png")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestJoinGroupIsIdempotent(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	require.NoError(t, s.groups.JoinGroup(testCtx(), alice.ID, group.ID))
	require.NoError(t, s.groups.JoinGroup(testCtx(), alice.ID, group.ID))

	members, err := s.groups.GetGroupMembers(testCtx(), group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, alice.ID, members[0].UserID)
}

func TestLeaveGroupWhenNotMemberIsNoOp(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	assert.NoError(t, s.groups.LeaveGroup(testCtx(), alice.ID, group.ID))
}

func TestGroupMayHaveZeroMembers(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")

	require.NoError(t, s.groups.JoinGroup(testCtx(), alice.ID, group.ID))
	require.NoError(t, s.groups.LeaveGroup(testCtx(), alice.ID, group.ID))

	members, err := s.groups.GetGroupMembers(testCtx(), group.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	// The group itself survives without members.
	_, err = s.groups.GetGroupByID(testCtx(), group.ID)
	assert.NoError(t, err)
}

func TestDeleteGroupCascades(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")
	group := createTestGroup(t, s.db, "Hikers")
	other := createTestGroup(t, s.db, "Bakers")

	require.NoError(t, s.groups.JoinGroup(testCtx(), alice.ID, group.ID))
	require.NoError(t, s.groups.JoinGroup(testCtx(), bob.ID, group.ID))

	post, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "Trailhead meetup", "Saturday at 9")
	require.NoError(t, err)
	_, err = s.comments.CreateComment(testCtx(), post.ID, bob.ID, "See you there")
	require.NoError(t, err)

	otherPost, err := s.posts.CreatePost(testCtx(), other.ID, alice.ID, "Sourdough tips", "Use a starter")
	require.NoError(t, err)

	require.NoError(t, s.groups.DeleteGroup(testCtx(), group.ID))

	var posts, comments, memberships int64
	require.NoError(t, s.db.Unscoped().Model(&models.Post{}).Where("group_id = ?", group.ID).Count(&posts).Error)
	require.NoError(t, s.db.Unscoped().Model(&models.Comment{}).Where("group_id = ?", group.ID).Count(&comments).Error)
	require.NoError(t, s.db.Model(&models.GroupMember{}).Where("group_id = ?", group.ID).Count(&memberships).Error)
	assert.EqualValues(t, 0, posts)
	assert.EqualValues(t, 0, comments)
	assert.EqualValues(t, 0, memberships)

	// Content of other groups and the users themselves are untouched.
	_, err = s.posts.GetPost(testCtx(), otherPost.ID)
	assert.NoError(t, err)
	_, err = s.users.GetUserProfile(testCtx(), alice.ID)
	assert.NoError(t, err)
}

func TestListGroupsAndDetails(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	group := createTestGroup(t, s.db, "Hikers")
	createTestGroup(t, s.db, "Bakers")

	_, err := s.posts.CreatePost(testCtx(), group.ID, alice.ID, "Trailhead meetup", "Saturday at 9")
	require.NoError(t, err)

	groups, err := s.groups.ListGroups(testCtx())
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	posts, err := s.posts.ListGroupPosts(testCtx(), group.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Trailhead meetup", posts[0].Title)
}
