package repository

import (
	"context"

	"github.com/questx-lab/discord/internal/entity"
	"github.com/questx-lab/discord/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type MemberRepository interface {
	Upsert(context.Context, *entity.Member) error
	Get(ctx context.Context, guildID, userID entity.Snowflake) (*entity.Member, error)
	GetRoleIDs(ctx context.Context, guildID, userID entity.Snowflake) ([]entity.Snowflake, error)
	AddRole(ctx context.Context, guildID, userID, roleID entity.Snowflake) error
	RemoveRole(ctx context.Context, guildID, userID, roleID entity.Snowflake) error
	DeleteByID(ctx context.Context, guildID, userID entity.Snowflake) error
}

type memberRepository struct{}

func NewMemberRepository() MemberRepository {
	return &memberRepository{}
}

// Upsert stores the member snapshot with its user row and replaces the
// member's explicit role set.
func (r *memberRepository) Upsert(ctx context.Context, e *entity.Member) error {
	db := xcontext.DB(ctx)

	if !e.User.ID.IsZero() {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&e.User).Error; err != nil {
			return err
		}
	}

	member := *e
	member.User = entity.User{}
	if err := db.Omit("User").Clauses(clause.OnConflict{UpdateAll: true}).Create(&member).Error; err != nil {
		return err
	}

	err := db.Delete(&entity.MemberRole{}, "guild_id = ? AND user_id = ?", e.GuildID, e.UserID).Error
	if err != nil {
		return err
	}

	for _, roleID := range e.RoleIDs {
		memberRole := entity.MemberRole{GuildID: e.GuildID, UserID: e.UserID, RoleID: roleID}
		if err := db.Create(&memberRole).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *memberRepository) Get(ctx context.Context, guildID, userID entity.Snowflake) (*entity.Member, error) {
	result := entity.Member{}
	err := xcontext.DB(ctx).
		Take(&result, "guild_id = ? AND user_id = ?", guildID, userID).Error
	if err != nil {
		return nil, err
	}

	// The user row may be absent; the snapshot is still usable without it.
	if err := xcontext.DB(ctx).Take(&result.User, "id = ?", userID).Error; err != nil {
		result.User = entity.User{}
	}

	roleIDs, err := r.GetRoleIDs(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}

	result.RoleIDs = roleIDs
	return &result, nil
}

func (r *memberRepository) GetRoleIDs(ctx context.Context, guildID, userID entity.Snowflake) ([]entity.Snowflake, error) {
	memberRoles := []entity.MemberRole{}
	err := xcontext.DB(ctx).
		Find(&memberRoles, "guild_id = ? AND user_id = ?", guildID, userID).Error
	if err != nil {
		return nil, err
	}

	roleIDs := make([]entity.Snowflake, 0, len(memberRoles))
	for _, memberRole := range memberRoles {
		roleIDs = append(roleIDs, memberRole.RoleID)
	}

	return roleIDs, nil
}

func (r *memberRepository) AddRole(ctx context.Context, guildID, userID, roleID entity.Snowflake) error {
	memberRole := entity.MemberRole{GuildID: guildID, UserID: userID, RoleID: roleID}
	return xcontext.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&memberRole).Error
}

func (r *memberRepository) RemoveRole(ctx context.Context, guildID, userID, roleID entity.Snowflake) error {
	return xcontext.DB(ctx).
		Delete(&entity.MemberRole{}, "guild_id = ? AND user_id = ? AND role_id = ?", guildID, userID, roleID).Error
}

func (r *memberRepository) DeleteByID(ctx context.Context, guildID, userID entity.Snowflake) error {
	err := xcontext.DB(ctx).
		Delete(&entity.MemberRole{}, "guild_id = ? AND user_id = ?", guildID, userID).Error
	if err != nil {
		return err
	}

	return xcontext.DB(ctx).
		Delete(&entity.Member{}, "guild_id = ? AND user_id = ?", guildID, userID).Error
}
