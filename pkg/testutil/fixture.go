package testutil

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/repository"
)

var idNode *snowflake.Node

func init() {
	var err error
	idNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// NewSnowflakeID mints a fresh unique ID for tests that need one beyond the
// fixed fixtures below.
func NewSnowflakeID() entity.Snowflake {
	return entity.Snowflake(idNode.Generate().Int64())
}

// Fixture guild: an owner, a moderator with a high role, a helper with a low
// role, and a newcomer with no explicit roles.
var (
	Guild1 = entity.Guild{
		ID:      entity.MustSnowflake("230835489769193472"),
		Name:    "Guild1",
		OwnerID: entity.MustSnowflake("146628811117199360"),
	}

	EveryoneRole1 = entity.Role{
		ID:          Guild1.ID,
		GuildID:     Guild1.ID,
		Name:        "@everyone",
		Permissions: entity.NewPermissionSet(entity.VIEW_CHANNEL, entity.SEND_MESSAGES),
		Position:    0,
	}

	ModeratorRole = entity.Role{
		ID:          entity.MustSnowflake("230835489769193473"),
		GuildID:     Guild1.ID,
		Name:        "moderator",
		Permissions: entity.NewPermissionSet(entity.KICK_MEMBERS, entity.BAN_MEMBERS),
		Position:    5,
	}

	HelperRole = entity.Role{
		ID:          entity.MustSnowflake("230835489769193474"),
		GuildID:     Guild1.ID,
		Name:        "helper",
		Permissions: entity.NewPermissionSet(entity.MANAGE_MESSAGES),
		Position:    3,
	}

	OwnerUser = entity.User{
		ID:       Guild1.OwnerID,
		Username: "owner",
	}

	ModeratorUser = entity.User{
		ID:       entity.MustSnowflake("146628811117199361"),
		Username: "moderator",
	}

	HelperUser = entity.User{
		ID:       entity.MustSnowflake("146628811117199362"),
		Username: "helper",
	}

	NewcomerUser = entity.User{
		ID:       entity.MustSnowflake("146628811117199363"),
		Username: "newcomer",
	}

	OwnerMember = entity.Member{
		GuildID:  Guild1.ID,
		UserID:   OwnerUser.ID,
		User:     OwnerUser,
		JoinedAt: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	ModeratorMember = entity.Member{
		GuildID:  Guild1.ID,
		UserID:   ModeratorUser.ID,
		User:     ModeratorUser,
		JoinedAt: time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC),
		RoleIDs:  []entity.Snowflake{ModeratorRole.ID},
	}

	HelperMember = entity.Member{
		GuildID:  Guild1.ID,
		UserID:   HelperUser.ID,
		User:     HelperUser,
		Nickname: "helping-hand",
		JoinedAt: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
		RoleIDs:  []entity.Snowflake{HelperRole.ID},
	}

	NewcomerMember = entity.Member{
		GuildID:  Guild1.ID,
		UserID:   NewcomerUser.ID,
		User:     NewcomerUser,
		JoinedAt: time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertGuilds(ctx)
	InsertMembers(ctx)
}

func InsertGuilds(ctx context.Context) {
	guildRepo := repository.NewGuildRepository(&MockRedisClient{})
	roleRepo := repository.NewRoleRepository()

	guild := Guild1
	if err := guildRepo.Upsert(ctx, &guild); err != nil {
		panic(err)
	}

	for _, role := range []entity.Role{EveryoneRole1, ModeratorRole, HelperRole} {
		role := role
		if err := roleRepo.Upsert(ctx, &role); err != nil {
			panic(err)
		}
	}
}

func InsertMembers(ctx context.Context) {
	memberRepo := repository.NewMemberRepository()

	members := []entity.Member{OwnerMember, ModeratorMember, HelperMember, NewcomerMember}
	for _, member := range members {
		member := member
		if err := memberRepo.Upsert(ctx, &member); err != nil {
			panic(err)
		}
	}
}
