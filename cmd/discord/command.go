package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "discord"
	app.Usage = "guild snapshot and moderation tool"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the configuration file",
			Value: "config.toml",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      server.syncGuild,
			Name:        "sync",
			Usage:       "Pull a guild snapshot from the Discord API",
			ArgsUsage:   "<guildID>",
			Category:    "State",
			Description: `Fetches the guild, its roles, and all of its members, and rebuilds the local snapshots from them.`,
		},
		{
			Action:      server.getBasePermissions,
			Name:        "permissions",
			Usage:       "Compute the base permissions of a member",
			ArgsUsage:   "<guildID> <userID>",
			Category:    "Permission",
			Description: `Computes the union of the everyone role and the member's explicit roles. The guild owner holds every permission.`,
		},
		{
			Action:      server.compareMembers,
			Name:        "compare",
			Usage:       "Compare two members in the role hierarchy",
			ArgsUsage:   "<guildID> <userID> <otherUserID>",
			Category:    "Permission",
			Description: `Reports whether the first member is strictly higher than the second one in the role hierarchy.`,
		},
		{
			Action:      server.kickMember,
			Name:        "kick",
			Usage:       "Kick a member on behalf of another member",
			ArgsUsage:   "<guildID> <actorUserID> <targetUserID>",
			Flags:       []cli.Flag{reasonFlag},
			Category:    "Moderation",
			Description: `Kicks the target member after checking the actor's permission and role hierarchy.`,
		},
		{
			Action:    server.banMember,
			Name:      "ban",
			Usage:     "Ban a member on behalf of another member",
			ArgsUsage: "<guildID> <actorUserID> <targetUserID>",
			Flags: []cli.Flag{
				reasonFlag,
				&cli.IntFlag{
					Name:  "delete-message-days",
					Usage: "Number of days of messages to delete",
				},
			},
			Category:    "Moderation",
			Description: `Bans the target member after checking the actor's permission and role hierarchy.`,
		},
	}

	s.app = app
}

var reasonFlag = &cli.StringFlag{
	Name:  "reason",
	Usage: "Audit log reason",
}
