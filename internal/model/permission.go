package model

type GetBasePermissionsRequest struct {
	GuildID string `json:"guild_id"`
	UserID  string `json:"user_id"`
}

type GetBasePermissionsResponse struct {
	Permissions uint64   `json:"permissions"`
	Names       []string `json:"names"`
	Owner       bool     `json:"owner"`
}

type CompareMembersRequest struct {
	GuildID     string `json:"guild_id"`
	UserID      string `json:"user_id"`
	OtherUserID string `json:"other_user_id"`
}

type CompareMembersResponse struct {
	Higher bool `json:"higher"`
}
