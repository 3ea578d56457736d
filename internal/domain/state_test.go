package domain

import (
	"context"
	"testing"
	"time"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/model"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/api/discord"
	"github.com/questx-lab/discord/pkg/errorx"
	"github.com/questx-lab/discord/pkg/testutil"
	"github.com/stretchr/testify/require"
)

var syncGuild = discord.Guild{
	ID:      "230835489769193472",
	Name:    "Guild1",
	OwnerID: "146628811117199360",
	Roles: []discord.Role{
		{ID: "230835489769193472", Name: "@everyone", Permissions: 3072, Position: 0},
		{ID: "230835489769193473", Name: "moderator", Permissions: 6, Position: 5},
	},
}

var syncMembers = []discord.Member{
	{
		UserID:   "146628811117199360",
		Username: "owner",
		JoinedAt: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		UserID:   "146628811117199361",
		Username: "moderator",
		JoinedAt: time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC),
		RoleIDs:  []string{"230835489769193473"},
	},
	{
		UserID:   "146628811117199362",
		Username: "helper",
		Nickname: "helping-hand",
		JoinedAt: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
	},
}

func Test_StateDomain_SyncGuild(t *testing.T) {
	ctx := testutil.MockContext()

	// MockContext configures a page size of two, so three members take two
	// list calls.
	listCalls := 0
	endpoint := &testutil.MockDiscordEndpoint{
		GetGuildFunc: func(ctx context.Context, guildID string) (discord.Guild, error) {
			require.Equal(t, syncGuild.ID, guildID)
			return syncGuild, nil
		},
		ListMembersFunc: func(ctx context.Context, guildID string, limit int, after string) ([]discord.Member, error) {
			listCalls++
			require.Equal(t, 2, limit)

			switch after {
			case "":
				return syncMembers[:2], nil
			case syncMembers[1].UserID:
				return syncMembers[2:], nil
			default:
				t.Fatalf("unexpected cursor %q", after)
				return nil, nil
			}
		},
	}

	guildRepo := repository.NewGuildRepository(&testutil.MockRedisClient{})
	roleRepo := repository.NewRoleRepository()
	memberRepo := repository.NewMemberRepository()
	stateDomain := NewStateDomain(endpoint, guildRepo, roleRepo, memberRepo)

	resp, err := stateDomain.SyncGuild(ctx, &model.SyncGuildRequest{GuildID: syncGuild.ID})
	require.NoError(t, err)
	require.NotEmpty(t, resp.BatchID)
	require.Equal(t, 2, resp.Roles)
	require.Equal(t, 3, resp.Members)
	require.Equal(t, 2, listCalls)

	guildID := entity.MustSnowflake(syncGuild.ID)

	guild, err := guildRepo.GetByID(ctx, guildID)
	require.NoError(t, err)
	require.Equal(t, "Guild1", guild.Name)
	require.Equal(t, entity.MustSnowflake(syncGuild.OwnerID), guild.OwnerID)

	roles, err := roleRepo.GetByGuildID(ctx, guildID)
	require.NoError(t, err)
	require.Len(t, roles, 2)

	member, err := memberRepo.Get(ctx, guildID, entity.MustSnowflake("146628811117199361"))
	require.NoError(t, err)
	require.Equal(t, "moderator", member.User.Username)
	require.Equal(t, []entity.Snowflake{entity.MustSnowflake("230835489769193473")}, member.RoleIDs)

	helper, err := memberRepo.Get(ctx, guildID, entity.MustSnowflake("146628811117199362"))
	require.NoError(t, err)
	require.Equal(t, "helping-hand", helper.DisplayName())
}

func Test_StateDomain_SyncGuild_SkipsInvalidRole(t *testing.T) {
	ctx := testutil.MockContext()

	guild := syncGuild
	guild.Roles = append([]discord.Role{}, syncGuild.Roles...)
	guild.Roles = append(guild.Roles, discord.Role{ID: "not-a-snowflake", Name: "broken"})

	endpoint := &testutil.MockDiscordEndpoint{
		GetGuildFunc: func(ctx context.Context, guildID string) (discord.Guild, error) {
			return guild, nil
		},
		ListMembersFunc: func(ctx context.Context, guildID string, limit int, after string) ([]discord.Member, error) {
			return nil, nil
		},
	}

	guildRepo := repository.NewGuildRepository(&testutil.MockRedisClient{})
	roleRepo := repository.NewRoleRepository()
	stateDomain := NewStateDomain(endpoint, guildRepo, roleRepo, repository.NewMemberRepository())

	resp, err := stateDomain.SyncGuild(ctx, &model.SyncGuildRequest{GuildID: syncGuild.ID})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Members)

	// The skipped role must not show up in the reported count either.
	require.Equal(t, 2, resp.Roles)

	roles, err := roleRepo.GetByGuildID(ctx, entity.MustSnowflake(syncGuild.ID))
	require.NoError(t, err)
	require.Len(t, roles, 2)
}

func Test_StateDomain_SyncGuild_Unavailable(t *testing.T) {
	ctx := testutil.MockContext()

	// The default mock returns an error for every call.
	stateDomain := NewStateDomain(
		&testutil.MockDiscordEndpoint{},
		repository.NewGuildRepository(&testutil.MockRedisClient{}),
		repository.NewRoleRepository(),
		repository.NewMemberRepository(),
	)

	_, err := stateDomain.SyncGuild(ctx, &model.SyncGuildRequest{GuildID: syncGuild.ID})
	requireErrorCode(t, err, errorx.Unavailable)
}
