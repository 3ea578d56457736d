package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/model"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/api/discord"
	"github.com/questx-lab/discord/pkg/errorx"
	"github.com/questx-lab/discord/pkg/xcontext"

	mathUtil "github.com/pkg/math"
)

// defaultMemberPageSize is the hard limit of the list-guild-members call.
const defaultMemberPageSize = 1000

type StateDomain interface {
	SyncGuild(ctx context.Context, req *model.SyncGuildRequest) (*model.SyncGuildResponse, error)
}

type stateDomain struct {
	endpoint   discord.IEndpoint
	guildRepo  repository.GuildRepository
	roleRepo   repository.RoleRepository
	memberRepo repository.MemberRepository
}

func NewStateDomain(
	endpoint discord.IEndpoint,
	guildRepo repository.GuildRepository,
	roleRepo repository.RoleRepository,
	memberRepo repository.MemberRepository,
) StateDomain {
	return &stateDomain{
		endpoint:   endpoint,
		guildRepo:  guildRepo,
		roleRepo:   roleRepo,
		memberRepo: memberRepo,
	}
}

// SyncGuild pulls the guild, its roles, and its members from the REST API and
// rebuilds the local snapshots from them.
func (d *stateDomain) SyncGuild(
	ctx context.Context, req *model.SyncGuildRequest,
) (*model.SyncGuildResponse, error) {
	batchID := uuid.NewString()

	guild, err := d.endpoint.GetGuild(ctx, req.GuildID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Unable to get guild %s (batch %s): %v", req.GuildID, batchID, err)
		if resetAt, ok := discord.IsRateLimit(err); ok {
			return nil, errorx.New(errorx.TooManyRequests, "Rate limited until %s", resetAt)
		}

		return nil, errorx.New(errorx.Unavailable, "Unable to fetch guild")
	}

	guildEntity, err := toGuildEntity(guild)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid guild payload (batch %s): %v", batchID, err)
		return nil, errorx.New(errorx.BadResponse, "Invalid guild payload")
	}

	if err := d.guildRepo.Upsert(ctx, &guildEntity); err != nil {
		xcontext.Logger(ctx).Errorf("Unable to upsert guild (batch %s): %v", batchID, err)
		return nil, errorx.Unknown
	}

	roles := guild.Roles
	if len(roles) == 0 {
		roles, err = d.endpoint.GetRoles(ctx, req.GuildID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Unable to get roles (batch %s): %v", batchID, err)
			return nil, errorx.New(errorx.Unavailable, "Unable to fetch roles")
		}
	}

	roleCount := 0
	for _, role := range roles {
		roleEntity, err := toRoleEntity(guildEntity.ID, role)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Skip invalid role %s (batch %s): %v", role.ID, batchID, err)
			continue
		}

		if err := d.roleRepo.Upsert(ctx, &roleEntity); err != nil {
			xcontext.Logger(ctx).Errorf("Unable to upsert role (batch %s): %v", batchID, err)
			return nil, errorx.Unknown
		}

		roleCount++
	}

	pageSize := xcontext.Configs(ctx).Sync.MemberPageSize
	if pageSize <= 0 {
		pageSize = defaultMemberPageSize
	}
	pageSize = mathUtil.MinInt(pageSize, defaultMemberPageSize)

	count := 0
	after := ""
	for {
		members, err := d.endpoint.ListMembers(ctx, req.GuildID, pageSize, after)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Unable to list members (batch %s): %v", batchID, err)
			return nil, errorx.New(errorx.Unavailable, "Unable to fetch members")
		}

		if len(members) == 0 {
			break
		}

		for _, member := range members {
			memberEntity, err := toMemberEntity(guildEntity.ID, member)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Skip invalid member %s (batch %s): %v", member.UserID, batchID, err)
				continue
			}

			if err := d.memberRepo.Upsert(ctx, &memberEntity); err != nil {
				xcontext.Logger(ctx).Errorf("Unable to upsert member (batch %s): %v", batchID, err)
				return nil, errorx.Unknown
			}

			count++
		}

		if len(members) < pageSize {
			break
		}

		after = members[len(members)-1].UserID
	}

	xcontext.Logger(ctx).Infof("Synced guild %s: %d roles, %d members (batch %s)",
		req.GuildID, roleCount, count, batchID)

	return &model.SyncGuildResponse{
		BatchID: batchID,
		Roles:   roleCount,
		Members: count,
	}, nil
}

func toGuildEntity(guild discord.Guild) (entity.Guild, error) {
	id, err := entity.ParseSnowflake(guild.ID)
	if err != nil {
		return entity.Guild{}, err
	}

	ownerID, err := entity.ParseSnowflake(guild.OwnerID)
	if err != nil {
		return entity.Guild{}, err
	}

	return entity.Guild{ID: id, Name: guild.Name, OwnerID: ownerID}, nil
}

func toRoleEntity(guildID entity.Snowflake, role discord.Role) (entity.Role, error) {
	id, err := entity.ParseSnowflake(role.ID)
	if err != nil {
		return entity.Role{}, err
	}

	return entity.Role{
		ID:          id,
		GuildID:     guildID,
		Name:        role.Name,
		Permissions: entity.PermissionSet(role.Permissions),
		Position:    role.Position,
		Color:       role.Color,
		Hoist:       role.Hoist,
		Managed:     role.Managed,
		Mentionable: role.Mentionable,
	}, nil
}

func toMemberEntity(guildID entity.Snowflake, member discord.Member) (entity.Member, error) {
	userID, err := entity.ParseSnowflake(member.UserID)
	if err != nil {
		return entity.Member{}, err
	}

	roleIDs := make([]entity.Snowflake, 0, len(member.RoleIDs))
	for _, roleID := range member.RoleIDs {
		id, err := entity.ParseSnowflake(roleID)
		if err != nil {
			return entity.Member{}, err
		}

		roleIDs = append(roleIDs, id)
	}

	return entity.Member{
		GuildID:  guildID,
		UserID:   userID,
		Nickname: member.Nickname,
		JoinedAt: member.JoinedAt,
		RoleIDs:  roleIDs,
		User: entity.User{
			ID:            userID,
			Username:      member.Username,
			Discriminator: member.Discriminator,
			Avatar:        member.Avatar,
			Bot:           member.Bot,
		},
	}, nil
}
