package domain

import (
	"testing"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/model"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/errorx"
	"github.com/questx-lab/discord/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newPermissionDomain() PermissionDomain {
	return NewPermissionDomain(
		repository.NewGuildRepository(&testutil.MockRedisClient{}),
		repository.NewRoleRepository(),
		repository.NewMemberRepository(),
	)
}

func Test_PermissionDomain_GetBasePermissions_Owner(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	resp, err := newPermissionDomain().GetBasePermissions(ctx, &model.GetBasePermissionsRequest{
		GuildID: testutil.Guild1.ID.String(),
		UserID:  testutil.OwnerUser.ID.String(),
	})
	require.NoError(t, err)
	require.True(t, resp.Owner)
	require.Equal(t, uint64(entity.AllPermissions), resp.Permissions)
}

func Test_PermissionDomain_GetBasePermissions_Union(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	resp, err := newPermissionDomain().GetBasePermissions(ctx, &model.GetBasePermissionsRequest{
		GuildID: testutil.Guild1.ID.String(),
		UserID:  testutil.ModeratorUser.ID.String(),
	})
	require.NoError(t, err)
	require.False(t, resp.Owner)

	want := testutil.EveryoneRole1.Permissions.Union(testutil.ModeratorRole.Permissions)
	require.Equal(t, uint64(want), resp.Permissions)
	require.Contains(t, resp.Names, "KICK_MEMBERS")
	require.Contains(t, resp.Names, "VIEW_CHANNEL")
}

func Test_PermissionDomain_GetBasePermissions_NoExplicitRoles(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	resp, err := newPermissionDomain().GetBasePermissions(ctx, &model.GetBasePermissionsRequest{
		GuildID: testutil.Guild1.ID.String(),
		UserID:  testutil.NewcomerUser.ID.String(),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(testutil.EveryoneRole1.Permissions), resp.Permissions)
}

func Test_PermissionDomain_GetBasePermissions_Errors(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	permissionDomain := newPermissionDomain()

	_, err := permissionDomain.GetBasePermissions(ctx, &model.GetBasePermissionsRequest{
		GuildID: "not-a-snowflake",
		UserID:  testutil.OwnerUser.ID.String(),
	})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = permissionDomain.GetBasePermissions(ctx, &model.GetBasePermissionsRequest{
		GuildID: "1",
		UserID:  testutil.OwnerUser.ID.String(),
	})
	requireErrorCode(t, err, errorx.NotFound)

	_, err = permissionDomain.GetBasePermissions(ctx, &model.GetBasePermissionsRequest{
		GuildID: testutil.Guild1.ID.String(),
		UserID:  "999999999999999999",
	})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_PermissionDomain_CompareMembers(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	permissionDomain := newPermissionDomain()

	resp, err := permissionDomain.CompareMembers(ctx, &model.CompareMembersRequest{
		GuildID:     testutil.Guild1.ID.String(),
		UserID:      testutil.ModeratorUser.ID.String(),
		OtherUserID: testutil.HelperUser.ID.String(),
	})
	require.NoError(t, err)
	require.True(t, resp.Higher)

	resp, err = permissionDomain.CompareMembers(ctx, &model.CompareMembersRequest{
		GuildID:     testutil.Guild1.ID.String(),
		UserID:      testutil.HelperUser.ID.String(),
		OtherUserID: testutil.ModeratorUser.ID.String(),
	})
	require.NoError(t, err)
	require.False(t, resp.Higher)

	// Owner outranks every member.
	resp, err = permissionDomain.CompareMembers(ctx, &model.CompareMembersRequest{
		GuildID:     testutil.Guild1.ID.String(),
		UserID:      testutil.OwnerUser.ID.String(),
		OtherUserID: testutil.ModeratorUser.ID.String(),
	})
	require.NoError(t, err)
	require.True(t, resp.Higher)

	// A member never outranks itself.
	resp, err = permissionDomain.CompareMembers(ctx, &model.CompareMembersRequest{
		GuildID:     testutil.Guild1.ID.String(),
		UserID:      testutil.ModeratorUser.ID.String(),
		OtherUserID: testutil.ModeratorUser.ID.String(),
	})
	require.NoError(t, err)
	require.False(t, resp.Higher)
}

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	require.Error(t, err)

	errx := errorx.Error{}
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
}
