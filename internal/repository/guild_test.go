package repository_test

import (
	"testing"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/testutil"
	"github.com/questx-lab/discord/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_GuildRepository_Upsert(t *testing.T) {
	ctx := testutil.MockContext()
	guildRepo := repository.NewGuildRepository(&testutil.MockRedisClient{})

	guild := testutil.Guild1
	require.NoError(t, guildRepo.Upsert(ctx, &guild))

	got, err := guildRepo.GetByID(ctx, guild.ID)
	require.NoError(t, err)
	require.Equal(t, guild.Name, got.Name)
	require.Equal(t, guild.OwnerID, got.OwnerID)

	// Upserting again with a new name invalidates the cache.
	guild.Name = "Guild1-renamed"
	require.NoError(t, guildRepo.Upsert(ctx, &guild))

	got, err = guildRepo.GetByID(ctx, guild.ID)
	require.NoError(t, err)
	require.Equal(t, "Guild1-renamed", got.Name)
}

func Test_GuildRepository_GetByID_Cached(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := &testutil.MockRedisClient{}
	guildRepo := repository.NewGuildRepository(redisClient)

	guild := testutil.Guild1
	require.NoError(t, guildRepo.Upsert(ctx, &guild))

	// First read populates the cache.
	_, err := guildRepo.GetByID(ctx, guild.ID)
	require.NoError(t, err)

	// Renaming behind the repository's back is not observed until the cache
	// entry goes away.
	db := xcontext.DB(ctx)
	require.NoError(t, db.Model(&entity.Guild{}).
		Where("id = ?", guild.ID).Update("name", "stale-check").Error)

	got, err := guildRepo.GetByID(ctx, guild.ID)
	require.NoError(t, err)
	require.Equal(t, guild.Name, got.Name)
}

func Test_GuildRepository_DeleteByID(t *testing.T) {
	ctx := testutil.MockContext()
	guildRepo := repository.NewGuildRepository(&testutil.MockRedisClient{})

	guild := testutil.Guild1
	require.NoError(t, guildRepo.Upsert(ctx, &guild))

	_, err := guildRepo.GetByID(ctx, guild.ID)
	require.NoError(t, err)

	require.NoError(t, guildRepo.DeleteByID(ctx, guild.ID))

	_, err = guildRepo.GetByID(ctx, guild.ID)
	require.Error(t, err)
}
