package entity

type User struct {
	ID            Snowflake `gorm:"primaryKey;autoIncrement:false"`
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
}

// Mention is the raw user mention format.
func (u User) Mention() string {
	return "<@" + u.ID.String() + ">"
}

func (u User) Tag() string {
	return u.Username + "#" + u.Discriminator
}
