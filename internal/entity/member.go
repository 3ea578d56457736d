package entity

import "time"

// Member is a User annotated with guild-scoped data. The snapshot is
// read-only; the data layer rebuilds it from upstream events or REST sync.
type Member struct {
	GuildID  Snowflake `gorm:"primaryKey;autoIncrement:false"`
	UserID   Snowflake `gorm:"primaryKey;autoIncrement:false"`
	User     User      `gorm:"foreignKey:UserID"`
	Nickname string
	JoinedAt time.Time

	// RoleIDs holds the member's explicit roles, excluding the implicit
	// everyone role. Loaded from the member_roles table by the repository.
	RoleIDs []Snowflake `gorm:"-"`
}

// MemberRole links a member to one of its explicit roles.
type MemberRole struct {
	GuildID Snowflake `gorm:"primaryKey;autoIncrement:false"`
	UserID  Snowflake `gorm:"primaryKey;autoIncrement:false"`
	RoleID  Snowflake `gorm:"primaryKey;autoIncrement:false"`
}

// DisplayName is the name shown in the client: the nickname when set,
// otherwise the username.
func (m Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}

	return m.User.Username
}

// Mention is the raw nickname mention format.
func (m Member) Mention() string {
	return "<@!" + m.UserID.String() + ">"
}

func (m Member) HasRole(roleID Snowflake) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}

	return false
}
