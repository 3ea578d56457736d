package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/questx-lab/discord/config"
	"github.com/questx-lab/discord/internal/domain"
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/internal/model"
	"github.com/questx-lab/discord/internal/repository"
	"github.com/questx-lab/discord/pkg/api/discord"
	"github.com/questx-lab/discord/pkg/logger"
	"github.com/questx-lab/discord/pkg/xcontext"
	"github.com/questx-lab/discord/pkg/xredis"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	ctx context.Context

	configs     config.Configs
	db          *gorm.DB
	redisClient xredis.Client
	endpoint    discord.IEndpoint

	guildRepo  repository.GuildRepository
	roleRepo   repository.RoleRepository
	memberRepo repository.MemberRepository

	permissionDomain domain.PermissionDomain
	stateDomain      domain.StateDomain
	moderationDomain domain.ModerationDomain
}

func (s *srv) load(ct *cli.Context) {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()
}

func (s *srv) loadConfig(ct *cli.Context) {
	if _, err := toml.DecodeFile(ct.String("config"), &s.configs); err != nil {
		panic(err)
	}

	if token := os.Getenv("DISCORD_BOT_TOKEN"); token != "" {
		s.configs.Discord.BotToken = token
	}

	s.ctx = xcontext.WithConfigs(context.Background(), s.configs)
}

func (s *srv) loadLogger() {
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(s.configs.Log.Level))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadEndpoint() {
	s.endpoint = discord.New(s.configs.Discord)
}

func (s *srv) loadRepos() {
	s.guildRepo = repository.NewGuildRepository(s.redisClient)
	s.roleRepo = repository.NewRoleRepository()
	s.memberRepo = repository.NewMemberRepository()
}

func (s *srv) loadDomains() {
	s.permissionDomain = domain.NewPermissionDomain(s.guildRepo, s.roleRepo, s.memberRepo)
	s.stateDomain = domain.NewStateDomain(s.endpoint, s.guildRepo, s.roleRepo, s.memberRepo)
	s.moderationDomain = domain.NewModerationDomain(s.endpoint, s.guildRepo, s.roleRepo, s.memberRepo)
}

func (s *srv) syncGuild(ct *cli.Context) error {
	if ct.NArg() != 1 {
		return cli.ShowSubcommandHelp(ct)
	}

	s.load(ct)
	resp, err := s.stateDomain.SyncGuild(s.ctx, &model.SyncGuildRequest{
		GuildID: ct.Args().Get(0),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (s *srv) getBasePermissions(ct *cli.Context) error {
	if ct.NArg() != 2 {
		return cli.ShowSubcommandHelp(ct)
	}

	s.load(ct)
	resp, err := s.permissionDomain.GetBasePermissions(s.ctx, &model.GetBasePermissionsRequest{
		GuildID: ct.Args().Get(0),
		UserID:  ct.Args().Get(1),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (s *srv) compareMembers(ct *cli.Context) error {
	if ct.NArg() != 3 {
		return cli.ShowSubcommandHelp(ct)
	}

	s.load(ct)
	resp, err := s.permissionDomain.CompareMembers(s.ctx, &model.CompareMembersRequest{
		GuildID:     ct.Args().Get(0),
		UserID:      ct.Args().Get(1),
		OtherUserID: ct.Args().Get(2),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (s *srv) kickMember(ct *cli.Context) error {
	if ct.NArg() != 3 {
		return cli.ShowSubcommandHelp(ct)
	}

	s.load(ct)
	_, err := s.moderationDomain.KickMember(s.ctx, &model.KickMemberRequest{
		GuildID:      ct.Args().Get(0),
		ActorUserID:  ct.Args().Get(1),
		TargetUserID: ct.Args().Get(2),
		Reason:       ct.String("reason"),
	})
	if err != nil {
		return err
	}

	fmt.Println("kicked")
	return nil
}

func (s *srv) banMember(ct *cli.Context) error {
	if ct.NArg() != 3 {
		return cli.ShowSubcommandHelp(ct)
	}

	s.load(ct)
	_, err := s.moderationDomain.BanMember(s.ctx, &model.BanMemberRequest{
		GuildID:           ct.Args().Get(0),
		ActorUserID:       ct.Args().Get(1),
		TargetUserID:      ct.Args().Get(2),
		DeleteMessageDays: ct.Int("delete-message-days"),
		Reason:            ct.String("reason"),
	})
	if err != nil {
		return err
	}

	fmt.Println("banned")
	return nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
