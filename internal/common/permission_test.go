package common

import (
	"testing"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/pkg/errorx"
	"github.com/stretchr/testify/require"
)

var (
	testGuildID = entity.Snowflake(230835489769193472)
	ownerID     = entity.Snowflake(146628811117199360)
	aliceID     = entity.Snowflake(146628811117199361)
	bobID       = entity.Snowflake(146628811117199362)
	carolID     = entity.Snowflake(146628811117199363)

	everyoneRole = entity.Role{
		ID:          testGuildID,
		GuildID:     testGuildID,
		Name:        "@everyone",
		Permissions: entity.NewPermissionSet(entity.VIEW_CHANNEL),
		Position:    0,
	}

	highRole = entity.Role{
		ID:          entity.Snowflake(230835489769193473),
		GuildID:     testGuildID,
		Name:        "high",
		Permissions: entity.NewPermissionSet(entity.KICK_MEMBERS),
		Position:    5,
	}

	lowRole = entity.Role{
		ID:          entity.Snowflake(230835489769193474),
		GuildID:     testGuildID,
		Name:        "low",
		Permissions: entity.NewPermissionSet(entity.SEND_MESSAGES),
		Position:    3,
	}

	testGuild = entity.Guild{
		ID:      testGuildID,
		OwnerID: ownerID,
		Roles:   []entity.Role{everyoneRole, highRole, lowRole},
	}
)

func member(userID entity.Snowflake, roleIDs ...entity.Snowflake) entity.Member {
	return entity.Member{GuildID: testGuildID, UserID: userID, RoleIDs: roleIDs}
}

func Test_ComputeBasePermissions_Owner(t *testing.T) {
	perms := ComputeBasePermissions(member(ownerID), testGuild)
	require.Equal(t, entity.AllPermissions, perms)

	// Owner bypasses role resolution entirely, even with unknown role ids.
	perms = ComputeBasePermissions(member(ownerID, entity.Snowflake(1)), testGuild)
	require.Equal(t, entity.AllPermissions, perms)
}

func Test_ComputeBasePermissions_NoExplicitRoles(t *testing.T) {
	perms := ComputeBasePermissions(member(carolID), testGuild)
	require.Equal(t, everyoneRole.Permissions, perms)
}

func Test_ComputeBasePermissions_Union(t *testing.T) {
	perms := ComputeBasePermissions(member(aliceID, highRole.ID), testGuild)
	require.Equal(t, entity.NewPermissionSet(entity.VIEW_CHANNEL, entity.KICK_MEMBERS), perms)
	require.True(t, perms.Has(entity.VIEW_CHANNEL))
	require.True(t, perms.Has(entity.KICK_MEMBERS))
	require.False(t, perms.Has(entity.BAN_MEMBERS))
}

func Test_ComputeBasePermissions_Monotonic(t *testing.T) {
	base := ComputeBasePermissions(member(aliceID, highRole.ID), testGuild)
	extended := ComputeBasePermissions(member(aliceID, highRole.ID, lowRole.ID), testGuild)
	require.True(t, extended.Contains(base))
}

func Test_ComputeBasePermissions_DeletedRoleSkipped(t *testing.T) {
	deletedRoleID := entity.Snowflake(999999999999999999)
	perms := ComputeBasePermissions(member(aliceID, deletedRoleID), testGuild)
	require.Equal(t, everyoneRole.Permissions, perms)
}

func Test_IsHigher(t *testing.T) {
	owner := member(ownerID)
	alice := member(aliceID, highRole.ID)
	bob := member(bobID, lowRole.ID)
	carol := member(carolID)

	tests := []struct {
		name string
		a    entity.Member
		b    entity.Member
		want bool
	}{
		{name: "member is never higher than itself", a: alice, b: alice, want: false},
		{name: "owner outranks everyone", a: owner, b: alice, want: true},
		{name: "nobody outranks the owner", a: alice, b: owner, want: false},
		{name: "higher role position wins", a: alice, b: bob, want: true},
		{name: "lower role position loses", a: bob, b: alice, want: false},
		{name: "explicit role outranks no roles", a: bob, b: carol, want: true},
		{name: "no roles loses to explicit role", a: carol, b: bob, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsHigher(tt.a, tt.b, testGuild)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_IsHigher_EqualPositions(t *testing.T) {
	// Two distinct roles sharing a position: neither member outranks the
	// other, in either direction.
	twinRole := entity.Role{
		ID:          entity.Snowflake(230835489769193475),
		GuildID:     testGuildID,
		Name:        "twin",
		Permissions: entity.NewPermissionSet(entity.BAN_MEMBERS),
		Position:    highRole.Position,
	}
	guild := testGuild
	guild.Roles = append([]entity.Role{}, testGuild.Roles...)
	guild.Roles = append(guild.Roles, twinRole)

	alice := member(aliceID, highRole.ID)
	bob := member(bobID, twinRole.ID)

	got, err := IsHigher(alice, bob, guild)
	require.NoError(t, err)
	require.False(t, got)

	got, err = IsHigher(bob, alice, guild)
	require.NoError(t, err)
	require.False(t, got)
}

func Test_IsHigher_CrossGuild(t *testing.T) {
	alice := member(aliceID, highRole.ID)
	stranger := entity.Member{GuildID: entity.Snowflake(42), UserID: bobID}

	_, err := IsHigher(alice, stranger, testGuild)
	require.Error(t, err)

	errx := errorx.Error{}
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_IsHigher_DeletedRolesAbsentFromRanking(t *testing.T) {
	deletedRoleID := entity.Snowflake(999999999999999999)
	alice := member(aliceID, deletedRoleID)
	bob := member(bobID, lowRole.ID)

	got, err := IsHigher(alice, bob, testGuild)
	require.NoError(t, err)
	require.False(t, got)

	got, err = IsHigher(bob, alice, testGuild)
	require.NoError(t, err)
	require.True(t, got)
}

func Test_HighestRole_TieBrokenByID(t *testing.T) {
	// The twin's ID must stay clear of every fixture role so that it resolves
	// to the twin itself.
	twinRole := entity.Role{
		ID:       highRole.ID + 10,
		GuildID:  testGuildID,
		Name:     "twin",
		Position: highRole.Position,
	}
	guild := testGuild
	guild.Roles = append([]entity.Role{}, testGuild.Roles...)
	guild.Roles = append(guild.Roles, twinRole)

	alice := member(aliceID, highRole.ID, twinRole.ID)
	best, ok := HighestRole(alice, guild)
	require.True(t, ok)
	require.Equal(t, twinRole.ID, best.ID)
	require.Equal(t, highRole.Position, best.Position)
}

func Test_HighestRole_NoExplicitRoles(t *testing.T) {
	_, ok := HighestRole(member(carolID), testGuild)
	require.False(t, ok)

	// The everyone role never participates in ranking, even when listed
	// explicitly.
	_, ok = HighestRole(member(carolID, testGuildID), testGuild)
	require.False(t, ok)
}
