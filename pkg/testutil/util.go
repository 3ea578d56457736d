package testutil

import (
	"context"
	"time"

	"github.com/questx-lab/discord/config"
	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/pkg/logger"
	"github.com/questx-lab/discord/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "test",
		Discord: config.DiscordConfigs{
			BotToken: "bot-token",
			BotID:    "1000000000000000001",
		},
		Sync: config.SyncConfigs{
			MemberPageSize: 2,
			GuildCacheTTL:  time.Minute,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
