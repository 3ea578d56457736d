package domain

import (
	"context"

	"github.com/questx-lab/discord/internal/common"
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/model"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/api/discord"
	"github.com/questx-lab/discord/pkg/errorx"
	"github.com/questx-lab/discord/pkg/xcontext"
)

type ModerationDomain interface {
	KickMember(ctx context.Context, req *model.KickMemberRequest) (*model.KickMemberResponse, error)
	BanMember(ctx context.Context, req *model.BanMemberRequest) (*model.BanMemberResponse, error)
}

type moderationDomain struct {
	endpoint   discord.IEndpoint
	guildRepo  repository.GuildRepository
	roleRepo   repository.RoleRepository
	memberRepo repository.MemberRepository
}

func NewModerationDomain(
	endpoint discord.IEndpoint,
	guildRepo repository.GuildRepository,
	roleRepo repository.RoleRepository,
	memberRepo repository.MemberRepository,
) ModerationDomain {
	return &moderationDomain{
		endpoint:   endpoint,
		guildRepo:  guildRepo,
		roleRepo:   roleRepo,
		memberRepo: memberRepo,
	}
}

func (d *moderationDomain) KickMember(
	ctx context.Context, req *model.KickMemberRequest,
) (*model.KickMemberResponse, error) {
	err := d.authorize(ctx, req.GuildID, req.ActorUserID, req.TargetUserID, entity.KICK_MEMBERS)
	if err != nil {
		return nil, err
	}

	if err := d.endpoint.KickMember(ctx, req.GuildID, req.TargetUserID, req.Reason); err != nil {
		return nil, wrapEndpointError(ctx, "kick", err)
	}

	return &model.KickMemberResponse{}, nil
}

func (d *moderationDomain) BanMember(
	ctx context.Context, req *model.BanMemberRequest,
) (*model.BanMemberResponse, error) {
	err := d.authorize(ctx, req.GuildID, req.ActorUserID, req.TargetUserID, entity.BAN_MEMBERS)
	if err != nil {
		return nil, err
	}

	err = d.endpoint.BanMember(ctx, req.GuildID, req.TargetUserID, req.DeleteMessageDays, req.Reason)
	if err != nil {
		return nil, wrapEndpointError(ctx, "ban", err)
	}

	return &model.BanMemberResponse{}, nil
}

// authorize requires the actor to hold the given permission and to outrank
// the target in the role hierarchy.
func (d *moderationDomain) authorize(
	ctx context.Context,
	guildID, actorUserID, targetUserID string,
	flag entity.PermissionFlag,
) error {
	guild, err := loadGuildSnapshot(ctx, d.guildRepo, d.roleRepo, guildID)
	if err != nil {
		return err
	}

	actor, err := loadMemberSnapshot(ctx, d.memberRepo, guild.ID, actorUserID)
	if err != nil {
		return err
	}

	target, err := loadMemberSnapshot(ctx, d.memberRepo, guild.ID, targetUserID)
	if err != nil {
		return err
	}

	if !common.ComputeBasePermissions(*actor, *guild).Has(flag) {
		return errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	higher, err := common.IsHigher(*actor, *target, *guild)
	if err != nil {
		return err
	}

	if !higher {
		return errorx.New(errorx.PermissionDenied,
			"The target member is not lower in the role hierarchy")
	}

	return nil
}

func wrapEndpointError(ctx context.Context, action string, err error) error {
	xcontext.Logger(ctx).Errorf("Unable to %s member: %v", action, err)
	if resetAt, ok := discord.IsRateLimit(err); ok {
		return errorx.New(errorx.TooManyRequests, "Rate limited until %s", resetAt)
	}

	return errorx.New(errorx.Unavailable, "Unable to %s member", action)
}
