package entity

import (
	"context"

	"github.com/questx-lab/discord/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Guild{},
		&Role{},
		&Member{},
		&MemberRole{},
	)
}
