package repository

import (
	"context"
	"errors"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/pkg/xcontext"
	"github.com/questx-lab/discord/pkg/xredis"
	"gorm.io/gorm/clause"
)

type GuildRepository interface {
	Upsert(context.Context, *entity.Guild) error
	GetByID(context.Context, entity.Snowflake) (*entity.Guild, error)
	DeleteByID(context.Context, entity.Snowflake) error
}

type guildRepository struct {
	redisClient xredis.Client
}

func NewGuildRepository(redisClient xredis.Client) GuildRepository {
	return &guildRepository{redisClient: redisClient}
}

func redisKeyGuild(id entity.Snowflake) string {
	return "guild:" + id.String()
}

func (r *guildRepository) Upsert(ctx context.Context, e *entity.Guild) error {
	err := xcontext.DB(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(e).Error
	if err != nil {
		return err
	}

	if err := r.redisClient.Del(ctx, redisKeyGuild(e.ID)); err != nil {
		xcontext.Logger(ctx).Warnf("Unable to invalidate guild cache: %v", err)
	}

	return nil
}

func (r *guildRepository) GetByID(ctx context.Context, id entity.Snowflake) (*entity.Guild, error) {
	var cached entity.Guild
	if err := r.redisClient.GetObj(ctx, redisKeyGuild(id), &cached); err == nil {
		return &cached, nil
	}

	result := entity.Guild{}
	if err := xcontext.DB(ctx).Take(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}

	ttl := xcontext.Configs(ctx).Sync.GuildCacheTTL
	if err := r.redisClient.SetObj(ctx, redisKeyGuild(id), result, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Unable to cache guild: %v", err)
	}

	return &result, nil
}

func (r *guildRepository) DeleteByID(ctx context.Context, id entity.Snowflake) error {
	err := xcontext.DB(ctx).Delete(&entity.Guild{}, "id = ?", id).Error
	if err != nil {
		return err
	}

	err = r.redisClient.Del(ctx, redisKeyGuild(id))
	if err != nil && !errors.Is(err, context.Canceled) {
		xcontext.Logger(ctx).Warnf("Unable to invalidate guild cache: %v", err)
	}

	return nil
}
