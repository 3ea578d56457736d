package testutil

import (
	"context"
	"errors"

	"github.com/questx-lab/discord/pkg/api/discord"
)

type MockDiscordEndpoint struct {
	GetGuildFunc         func(context.Context, string) (discord.Guild, error)
	GetRolesFunc         func(context.Context, string) ([]discord.Role, error)
	GetMemberFunc        func(context.Context, string, string) (discord.Member, error)
	ListMembersFunc      func(context.Context, string, int, string) ([]discord.Member, error)
	AddMemberRoleFunc    func(context.Context, string, string, string, string) error
	RemoveMemberRoleFunc func(context.Context, string, string, string, string) error
	KickMemberFunc       func(context.Context, string, string, string) error
	BanMemberFunc        func(context.Context, string, string, int, string) error
	UnbanMemberFunc      func(context.Context, string, string, string) error
	ModifyMemberFunc     func(context.Context, string, string, discord.ModifyMemberSpec) error
}

func (e *MockDiscordEndpoint) GetGuild(ctx context.Context, guildID string) (discord.Guild, error) {
	if e.GetGuildFunc != nil {
		return e.GetGuildFunc(ctx, guildID)
	}

	return discord.Guild{}, errors.New("not implemented")
}

func (e *MockDiscordEndpoint) GetRoles(ctx context.Context, guildID string) ([]discord.Role, error) {
	if e.GetRolesFunc != nil {
		return e.GetRolesFunc(ctx, guildID)
	}

	return nil, errors.New("not implemented")
}

func (e *MockDiscordEndpoint) GetMember(ctx context.Context, guildID, userID string) (discord.Member, error) {
	if e.GetMemberFunc != nil {
		return e.GetMemberFunc(ctx, guildID, userID)
	}

	return discord.Member{}, errors.New("not implemented")
}

func (e *MockDiscordEndpoint) ListMembers(
	ctx context.Context, guildID string, limit int, after string,
) ([]discord.Member, error) {
	if e.ListMembersFunc != nil {
		return e.ListMembersFunc(ctx, guildID, limit, after)
	}

	return nil, errors.New("not implemented")
}

func (e *MockDiscordEndpoint) AddMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	if e.AddMemberRoleFunc != nil {
		return e.AddMemberRoleFunc(ctx, guildID, userID, roleID, reason)
	}

	return errors.New("not implemented")
}

func (e *MockDiscordEndpoint) RemoveMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	if e.RemoveMemberRoleFunc != nil {
		return e.RemoveMemberRoleFunc(ctx, guildID, userID, roleID, reason)
	}

	return errors.New("not implemented")
}

func (e *MockDiscordEndpoint) KickMember(ctx context.Context, guildID, userID, reason string) error {
	if e.KickMemberFunc != nil {
		return e.KickMemberFunc(ctx, guildID, userID, reason)
	}

	return errors.New("not implemented")
}

func (e *MockDiscordEndpoint) BanMember(
	ctx context.Context, guildID, userID string, deleteMessageDays int, reason string,
) error {
	if e.BanMemberFunc != nil {
		return e.BanMemberFunc(ctx, guildID, userID, deleteMessageDays, reason)
	}

	return errors.New("not implemented")
}

func (e *MockDiscordEndpoint) UnbanMember(ctx context.Context, guildID, userID, reason string) error {
	if e.UnbanMemberFunc != nil {
		return e.UnbanMemberFunc(ctx, guildID, userID, reason)
	}

	return errors.New("not implemented")
}

func (e *MockDiscordEndpoint) ModifyMember(
	ctx context.Context, guildID, userID string, spec discord.ModifyMemberSpec,
) error {
	if e.ModifyMemberFunc != nil {
		return e.ModifyMemberFunc(ctx, guildID, userID, spec)
	}

	return errors.New("not implemented")
}
