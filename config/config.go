package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env" json:"env"`

	Discord  DiscordConfigs  `toml:"discord" json:"discord"`
	Database DatabaseConfigs `toml:"database" json:"database"`
	Redis    RedisConfigs    `toml:"redis" json:"redis"`
	Log      LogConfigs      `toml:"log" json:"log"`
	Sync     SyncConfigs     `toml:"sync" json:"sync"`
}

type DiscordConfigs struct {
	BotToken string `toml:"bot_token" json:"bot_token"`
	BotID    string `toml:"bot_id" json:"bot_id"`

	// APIURL overrides the default Discord API base URL. It is mainly used
	// by tests pointing the endpoint at a local mock server.
	APIURL string `toml:"api_url" json:"api_url"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host" json:"host"`
	Port     string `toml:"port" json:"port"`
	Database string `toml:"database" json:"database"`
	User     string `toml:"user" json:"user"`
	Password string `toml:"password" json:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string `toml:"addr" json:"addr"`
}

type LogConfigs struct {
	Level int `toml:"level" json:"level"`
}

type SyncConfigs struct {
	// MemberPageSize is the limit parameter of the list-guild-members call.
	MemberPageSize int `toml:"member_page_size" json:"member_page_size"`

	// GuildCacheTTL bounds how long a guild snapshot stays in redis before
	// the repository falls back to the database.
	GuildCacheTTL time.Duration `toml:"guild_cache_ttl" json:"guild_cache_ttl"`
}
