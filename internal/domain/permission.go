package domain

import (
	"context"

	"github.com/questx-lab/discord/internal/common"
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/model"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/errorx"
	"github.com/questx-lab/discord/pkg/xcontext"
)

type PermissionDomain interface {
	GetBasePermissions(ctx context.Context, req *model.GetBasePermissionsRequest) (*model.GetBasePermissionsResponse, error)
	CompareMembers(ctx context.Context, req *model.CompareMembersRequest) (*model.CompareMembersResponse, error)
}

type permissionDomain struct {
	guildRepo  repository.GuildRepository
	roleRepo   repository.RoleRepository
	memberRepo repository.MemberRepository
}

func NewPermissionDomain(
	guildRepo repository.GuildRepository,
	roleRepo repository.RoleRepository,
	memberRepo repository.MemberRepository,
) PermissionDomain {
	return &permissionDomain{
		guildRepo:  guildRepo,
		roleRepo:   roleRepo,
		memberRepo: memberRepo,
	}
}

func (d *permissionDomain) GetBasePermissions(
	ctx context.Context, req *model.GetBasePermissionsRequest,
) (*model.GetBasePermissionsResponse, error) {
	guild, err := loadGuildSnapshot(ctx, d.guildRepo, d.roleRepo, req.GuildID)
	if err != nil {
		return nil, err
	}

	member, err := loadMemberSnapshot(ctx, d.memberRepo, guild.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	perms := common.ComputeBasePermissions(*member, *guild)
	return &model.GetBasePermissionsResponse{
		Permissions: uint64(perms),
		Names:       perms.Names(),
		Owner:       member.UserID == guild.OwnerID,
	}, nil
}

func (d *permissionDomain) CompareMembers(
	ctx context.Context, req *model.CompareMembersRequest,
) (*model.CompareMembersResponse, error) {
	guild, err := loadGuildSnapshot(ctx, d.guildRepo, d.roleRepo, req.GuildID)
	if err != nil {
		return nil, err
	}

	member, err := loadMemberSnapshot(ctx, d.memberRepo, guild.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	other, err := loadMemberSnapshot(ctx, d.memberRepo, guild.ID, req.OtherUserID)
	if err != nil {
		return nil, err
	}

	higher, err := common.IsHigher(*member, *other, *guild)
	if err != nil {
		return nil, err
	}

	return &model.CompareMembersResponse{Higher: higher}, nil
}

func loadGuildSnapshot(
	ctx context.Context,
	guildRepo repository.GuildRepository,
	roleRepo repository.RoleRepository,
	guildID string,
) (*entity.Guild, error) {
	id, err := entity.ParseSnowflake(guildID)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid guild id")
	}

	guild, err := guildRepo.GetByID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Unable to get guild %s: %v", guildID, err)
		return nil, errorx.New(errorx.NotFound, "Not found guild")
	}

	roles, err := roleRepo.GetByGuildID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Unable to get roles of guild %s: %v", guildID, err)
		return nil, errorx.Unknown
	}

	guild.Roles = roles
	return guild, nil
}

func loadMemberSnapshot(
	ctx context.Context,
	memberRepo repository.MemberRepository,
	guildID entity.Snowflake,
	userID string,
) (*entity.Member, error) {
	id, err := entity.ParseSnowflake(userID)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid user id")
	}

	member, err := memberRepo.Get(ctx, guildID, id)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Unable to get member %s of guild %s: %v", userID, guildID, err)
		return nil, errorx.New(errorx.NotFound, "Not found member")
	}

	return member, nil
}
