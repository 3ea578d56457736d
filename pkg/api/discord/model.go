package discord

import "time"

type Guild struct {
	ID      string
	Name    string
	OwnerID string
	Roles   []Role
}

type Role struct {
	ID          string
	Name        string
	Permissions uint64
	Position    int
	Color       int
	Hoist       bool
	Managed     bool
	Mentionable bool
}

type Member struct {
	UserID        string
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
	Nickname      string
	JoinedAt      time.Time
	RoleIDs       []string
}

// ModifyMemberSpec carries the optional fields of the modify-guild-member
// call. Nil fields are omitted from the request.
type ModifyMemberSpec struct {
	Nick    *string
	RoleIDs []string
}
