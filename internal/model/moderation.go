package model

type KickMemberRequest struct {
	GuildID      string `json:"guild_id"`
	ActorUserID  string `json:"actor_user_id"`
	TargetUserID string `json:"target_user_id"`
	Reason       string `json:"reason"`
}

type KickMemberResponse struct{}

type BanMemberRequest struct {
	GuildID           string `json:"guild_id"`
	ActorUserID       string `json:"actor_user_id"`
	TargetUserID      string `json:"target_user_id"`
	DeleteMessageDays int    `json:"delete_message_days"`
	Reason            string `json:"reason"`
}

type BanMemberResponse struct{}
