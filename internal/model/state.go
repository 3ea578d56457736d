package model

type SyncGuildRequest struct {
	GuildID string `json:"guild_id"`
}

type SyncGuildResponse struct {
	BatchID string `json:"batch_id"`
	Roles   int    `json:"roles"`
	Members int    `json:"members"`
}
