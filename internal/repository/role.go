package repository

import (
	"context"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	Upsert(context.Context, *entity.Role) error
	DeleteByID(context.Context, entity.Snowflake) error
	GetByID(context.Context, entity.Snowflake) (*entity.Role, error)
	GetByIDs(context.Context, []entity.Snowflake) ([]entity.Role, error)
	GetByGuildID(context.Context, entity.Snowflake) ([]entity.Role, error)
	GetEveryone(context.Context, entity.Snowflake) (*entity.Role, error)
}

type roleRepository struct{}

func NewRoleRepository() RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) Upsert(ctx context.Context, e *entity.Role) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(e).Error
}

func (r *roleRepository) DeleteByID(ctx context.Context, id entity.Snowflake) error {
	return xcontext.DB(ctx).Delete(&entity.Role{}, "id = ?", id).Error
}

func (r *roleRepository) GetByID(ctx context.Context, id entity.Snowflake) (*entity.Role, error) {
	result := entity.Role{}
	if err := xcontext.DB(ctx).Take(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *roleRepository) GetByIDs(ctx context.Context, ids []entity.Snowflake) ([]entity.Role, error) {
	result := []entity.Role{}
	err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *roleRepository) GetByGuildID(ctx context.Context, guildID entity.Snowflake) ([]entity.Role, error) {
	result := []entity.Role{}
	err := xcontext.DB(ctx).Find(&result, "guild_id = ?", guildID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetEveryone returns the guild's default role, whose ID equals the guild ID.
func (r *roleRepository) GetEveryone(ctx context.Context, guildID entity.Snowflake) (*entity.Role, error) {
	return r.GetByID(ctx, guildID)
}
