package entity

import "golang.org/x/exp/slices"

type Role struct {
	ID          Snowflake `gorm:"primaryKey;autoIncrement:false"`
	GuildID     Snowflake `gorm:"index"`
	Name        string
	Permissions PermissionSet
	Position    int
	Color       int
	Hoist       bool
	Managed     bool
	Mentionable bool
}

// IsEveryone reports whether this is the guild's default role. Discord
// guarantees the everyone role shares its ID with the guild.
func (r Role) IsEveryone() bool {
	return r.ID == r.GuildID
}

func (r Role) Mention() string {
	return "<@&" + r.ID.String() + ">"
}

// RoleLess defines the total order of roles within a guild: position
// ascending, ties broken by ID ascending. Two distinct roles never compare
// equal under this order.
func RoleLess(a, b Role) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}

	return a.ID < b.ID
}

// SortRoles sorts roles in place from lowest to highest precedence.
func SortRoles(roles []Role) {
	slices.SortFunc(roles, RoleLess)
}
