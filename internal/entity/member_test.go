package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Member_DisplayName(t *testing.T) {
	member := Member{
		User:   User{ID: 1, Username: "someone"},
		UserID: 1,
	}
	require.Equal(t, "someone", member.DisplayName())

	member.Nickname = "nick"
	require.Equal(t, "nick", member.DisplayName())
}

func Test_Member_Mention(t *testing.T) {
	member := Member{UserID: MustSnowflake("146628811117199360")}
	require.Equal(t, "<@!146628811117199360>", member.Mention())
}

func Test_SortRoles(t *testing.T) {
	guildID := Snowflake(100)
	roles := []Role{
		{ID: 3, GuildID: guildID, Position: 5},
		{ID: 1, GuildID: guildID, Position: 5},
		{ID: 2, GuildID: guildID, Position: 3},
	}

	SortRoles(roles)

	// Position ascending, equal positions ordered by ID.
	require.Equal(t, Snowflake(2), roles[0].ID)
	require.Equal(t, Snowflake(1), roles[1].ID)
	require.Equal(t, Snowflake(3), roles[2].ID)
}

func Test_Role_IsEveryone(t *testing.T) {
	guildID := Snowflake(100)
	require.True(t, Role{ID: guildID, GuildID: guildID}.IsEveryone())
	require.False(t, Role{ID: 7, GuildID: guildID}.IsEveryone())
}

func Test_Guild_EveryoneRole(t *testing.T) {
	guild := Guild{
		ID: 100,
		Roles: []Role{
			{ID: 100, GuildID: 100, Name: "@everyone"},
			{ID: 7, GuildID: 100, Name: "mod"},
		},
	}

	everyone, ok := guild.EveryoneRole()
	require.True(t, ok)
	require.Equal(t, "@everyone", everyone.Name)

	_, ok = guild.RoleByID(8)
	require.False(t, ok)
}
