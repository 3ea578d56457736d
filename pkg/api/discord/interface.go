package discord

import "context"

type IEndpoint interface {
	GetGuild(ctx context.Context, guildID string) (Guild, error)
	GetRoles(ctx context.Context, guildID string) ([]Role, error)
	GetMember(ctx context.Context, guildID, userID string) (Member, error)
	ListMembers(ctx context.Context, guildID string, limit int, after string) ([]Member, error)
	AddMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error
	RemoveMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error
	KickMember(ctx context.Context, guildID, userID, reason string) error
	BanMember(ctx context.Context, guildID, userID string, deleteMessageDays int, reason string) error
	UnbanMember(ctx context.Context, guildID, userID, reason string) error
	ModifyMember(ctx context.Context, guildID, userID string, spec ModifyMemberSpec) error
}
