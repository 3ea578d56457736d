package common

import (
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/pkg/errorx"
	"golang.org/x/exp/slices"
)

// ComputeBasePermissions resolves the permission set a member holds in a
// guild from role membership alone, before any channel overwrites. The guild
// owner bypasses role checks entirely. Role IDs that no longer resolve to a
// role of the guild contribute nothing.
func ComputeBasePermissions(member entity.Member, guild entity.Guild) entity.PermissionSet {
	if member.UserID == guild.OwnerID {
		return entity.AllPermissions
	}

	var perms entity.PermissionSet
	for _, role := range guild.Roles {
		if role.IsEveryone() || slices.Contains(member.RoleIDs, role.ID) {
			perms = perms.Union(role.Permissions)
		}
	}

	return perms
}

// IsHigher reports whether a outranks b in the guild's role hierarchy,
// determined by the positions of each member's highest explicit role. The
// owner outranks everyone, nobody outranks themselves, and members with
// equal highest positions do not outrank each other in either direction.
// Comparing members of different guilds is an input error.
func IsHigher(a, b entity.Member, guild entity.Guild) (bool, error) {
	if a.GuildID != b.GuildID {
		return false, errorx.New(errorx.BadRequest, "The provided member is in a different guild")
	}

	if a.UserID == b.UserID {
		return false, nil
	}

	if a.UserID == guild.OwnerID {
		return true, nil
	}

	if b.UserID == guild.OwnerID {
		return false, nil
	}

	return highestPosition(a, guild) > highestPosition(b, guild), nil
}

// HighestRole returns the member's highest explicit role under the
// (position, ID) order. The second result is false when the member holds no
// resolvable explicit roles.
func HighestRole(member entity.Member, guild entity.Guild) (entity.Role, bool) {
	var best entity.Role
	var ok bool
	for _, id := range member.RoleIDs {
		role, found := guild.RoleByID(id)
		if !found || role.IsEveryone() {
			continue
		}

		if !ok || entity.RoleLess(best, role) {
			best = role
			ok = true
		}
	}

	return best, ok
}

func highestPosition(member entity.Member, guild entity.Guild) int {
	role, ok := HighestRole(member, guild)
	if !ok {
		// No explicit roles ranks at the everyone level.
		return 0
	}

	return role.Position
}
