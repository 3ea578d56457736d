package entity

type Guild struct {
	ID      Snowflake `gorm:"primaryKey;autoIncrement:false"`
	Name    string
	OwnerID Snowflake

	// Roles carries the full role set of the guild snapshot, including the
	// everyone role. Attached by the repository, not persisted on this row.
	Roles []Role `gorm:"-"`
}

// EveryoneRole returns the guild's default role. The second result is false
// only on a malformed snapshot.
func (g Guild) EveryoneRole() (Role, bool) {
	return g.RoleByID(g.ID)
}

func (g Guild) RoleByID(id Snowflake) (Role, bool) {
	for _, role := range g.Roles {
		if role.ID == id {
			return role, true
		}
	}

	return Role{}, false
}
