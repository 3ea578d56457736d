package discord

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/puzpuzpuz/xsync"
	"github.com/questx-lab/discord/config"
	"github.com/questx-lab/discord/pkg/api"
)

const apiURL = "https://discord.com/api"
const userAgent = "DiscordBot (https://questx.com, 1.0)"
const iso8601 = "2006-01-02T15:04:05.000000+00:00"

const (
	modifyMemberRoleResource = "modify_member_role"
	moderateMemberResource   = "moderate_member"
	modifyMemberResource     = "modify_member"
)

type Endpoint struct {
	BotToken string
	BotID    string

	apiGenerator      api.Generator
	rateLimitResource *xsync.MapOf[string, *xsync.MapOf[string, time.Time]]
}

func New(cfg config.DiscordConfigs) *Endpoint {
	url := cfg.APIURL
	if url == "" {
		url = apiURL
	}

	return &Endpoint{
		BotToken:          cfg.BotToken,
		BotID:             cfg.BotID,
		apiGenerator:      api.NewGenerator(url),
		rateLimitResource: xsync.NewMapOf[*xsync.MapOf[string, time.Time]](),
	}
}

func (e *Endpoint) GetGuild(ctx context.Context, guildID string) (Guild, error) {
	resp, err := e.apiGenerator.New("/guilds/%s", guildID).
		Header("User-Agent", userAgent).
		GET(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return Guild{}, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return Guild{}, errors.New("invalid response")
	}

	// If response has the field of code, an error is returned.
	if _, err := body.GetInt("code"); err == nil {
		return Guild{}, ErrNotFound
	}

	id, err := body.GetString("id")
	if err != nil {
		return Guild{}, err
	}

	name, err := body.GetString("name")
	if err != nil {
		return Guild{}, err
	}

	ownerID, err := body.GetString("owner_id")
	if err != nil {
		return Guild{}, err
	}

	guild := Guild{ID: id, Name: name, OwnerID: ownerID}

	// The get-guild response embeds the full role list.
	array, err := body.GetArray("roles")
	if err != nil {
		return Guild{}, err
	}

	for _, obj := range array {
		role, err := parseRole(obj)
		if err != nil {
			return Guild{}, err
		}

		guild.Roles = append(guild.Roles, role)
	}

	return guild, nil
}

func (e *Endpoint) GetRoles(ctx context.Context, guildID string) ([]Role, error) {
	resp, err := e.apiGenerator.New("/guilds/%s/roles", guildID).
		Header("User-Agent", userAgent).
		GET(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return nil, err
	}

	array, ok := resp.Body.(api.Array)
	if !ok {
		return nil, errors.New("invalid response")
	}

	var roles []Role
	for _, obj := range array {
		role, err := parseRole(obj)
		if err != nil {
			return nil, err
		}

		roles = append(roles, role)
	}

	return roles, nil
}

func (e *Endpoint) GetMember(ctx context.Context, guildID, userID string) (Member, error) {
	resp, err := e.apiGenerator.New("/guilds/%s/members/%s", guildID, userID).
		Header("User-Agent", userAgent).
		GET(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return Member{}, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return Member{}, errors.New("invalid response")
	}

	// If response has the field of code, an error is returned.
	if _, err := body.GetInt("code"); err == nil {
		return Member{}, ErrNotFound
	}

	return parseMember(body)
}

func (e *Endpoint) ListMembers(ctx context.Context, guildID string, limit int, after string) ([]Member, error) {
	query := api.Parameter{"limit": strconv.Itoa(limit)}
	if after != "" {
		query["after"] = after
	}

	resp, err := e.apiGenerator.New("/guilds/%s/members", guildID).
		Header("User-Agent", userAgent).
		Query(query).
		GET(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return nil, err
	}

	array, ok := resp.Body.(api.Array)
	if !ok {
		return nil, errors.New("invalid response")
	}

	var members []Member
	for _, obj := range array {
		member, err := parseMember(obj)
		if err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	return members, nil
}

func (e *Endpoint) AddMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	if err := e.checkLimitingResource(modifyMemberRoleResource, guildID); err != nil {
		return err
	}

	client := e.apiGenerator.New("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID).
		Header("User-Agent", userAgent)
	if reason != "" {
		client = client.Header("X-Audit-Log-Reason", reason)
	}

	resp, err := client.PUT(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return err
	}

	return e.checkTooManyRequest(resp, modifyMemberRoleResource, guildID)
}

func (e *Endpoint) RemoveMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	if err := e.checkLimitingResource(modifyMemberRoleResource, guildID); err != nil {
		return err
	}

	client := e.apiGenerator.New("/guilds/%s/members/%s/roles/%s", guildID, userID, roleID).
		Header("User-Agent", userAgent)
	if reason != "" {
		client = client.Header("X-Audit-Log-Reason", reason)
	}

	resp, err := client.DELETE(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return err
	}

	return e.checkTooManyRequest(resp, modifyMemberRoleResource, guildID)
}

func (e *Endpoint) KickMember(ctx context.Context, guildID, userID, reason string) error {
	if err := e.checkLimitingResource(moderateMemberResource, guildID); err != nil {
		return err
	}

	client := e.apiGenerator.New("/guilds/%s/members/%s", guildID, userID).
		Header("User-Agent", userAgent)
	if reason != "" {
		client = client.Header("X-Audit-Log-Reason", reason)
	}

	resp, err := client.DELETE(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return err
	}

	return e.checkTooManyRequest(resp, moderateMemberResource, guildID)
}

func (e *Endpoint) BanMember(ctx context.Context, guildID, userID string, deleteMessageDays int, reason string) error {
	if err := e.checkLimitingResource(moderateMemberResource, guildID); err != nil {
		return err
	}

	client := e.apiGenerator.New("/guilds/%s/bans/%s", guildID, userID).
		Header("User-Agent", userAgent)
	if reason != "" {
		client = client.Header("X-Audit-Log-Reason", reason)
	}

	if deleteMessageDays > 0 {
		client = client.Query(api.Parameter{
			"delete_message_days": strconv.Itoa(deleteMessageDays),
		})
	}

	resp, err := client.PUT(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return err
	}

	return e.checkTooManyRequest(resp, moderateMemberResource, guildID)
}

func (e *Endpoint) UnbanMember(ctx context.Context, guildID, userID, reason string) error {
	if err := e.checkLimitingResource(moderateMemberResource, guildID); err != nil {
		return err
	}

	client := e.apiGenerator.New("/guilds/%s/bans/%s", guildID, userID).
		Header("User-Agent", userAgent)
	if reason != "" {
		client = client.Header("X-Audit-Log-Reason", reason)
	}

	resp, err := client.DELETE(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return err
	}

	return e.checkTooManyRequest(resp, moderateMemberResource, guildID)
}

func (e *Endpoint) ModifyMember(ctx context.Context, guildID, userID string, spec ModifyMemberSpec) error {
	if err := e.checkLimitingResource(modifyMemberResource, guildID); err != nil {
		return err
	}

	body := api.JSON{}
	if spec.Nick != nil {
		body["nick"] = *spec.Nick
	}

	if spec.RoleIDs != nil {
		body["roles"] = spec.RoleIDs
	}

	resp, err := e.apiGenerator.New("/guilds/%s/members/%s", guildID, userID).
		Header("User-Agent", userAgent).
		Body(body).
		PATCH(ctx, api.OAuth2("Bot", e.BotToken))
	if err != nil {
		return err
	}

	return e.checkTooManyRequest(resp, modifyMemberResource, guildID)
}

func parseRole(obj api.JSON) (Role, error) {
	id, err := obj.GetString("id")
	if err != nil {
		return Role{}, err
	}

	name, err := obj.GetString("name")
	if err != nil {
		return Role{}, err
	}

	permissions, err := obj.GetUint64("permissions")
	if err != nil {
		return Role{}, err
	}

	position, err := obj.GetInt("position")
	if err != nil {
		return Role{}, err
	}

	managed, err := obj.GetBool("managed")
	if err != nil {
		return Role{}, err
	}

	mentionable, err := obj.GetBool("mentionable")
	if err != nil {
		return Role{}, err
	}

	return Role{
		ID:          id,
		Name:        name,
		Permissions: permissions,
		Position:    position,
		Managed:     managed,
		Mentionable: mentionable,
	}, nil
}

func parseMember(obj api.JSON) (Member, error) {
	userID, err := obj.GetString("user.id")
	if err != nil {
		return Member{}, err
	}

	username, err := obj.GetString("user.username")
	if err != nil {
		return Member{}, err
	}

	// Optional user fields contribute nothing when absent.
	discriminator, _ := obj.GetString("user.discriminator")
	avatar, _ := obj.GetString("user.avatar")
	bot, _ := obj.GetBool("user.bot")
	nickname, _ := obj.GetString("nick")

	joinedAt, err := obj.GetTime("joined_at", iso8601)
	if err != nil {
		return Member{}, err
	}

	roleIDs, err := obj.GetStringArray("roles")
	if err != nil {
		return Member{}, err
	}

	return Member{
		UserID:        userID,
		Username:      username,
		Discriminator: discriminator,
		Avatar:        avatar,
		Bot:           bot,
		Nickname:      nickname,
		JoinedAt:      joinedAt,
		RoleIDs:       roleIDs,
	}, nil
}

func (e *Endpoint) checkLimitingResource(resource, identifier string) error {
	if limit, ok := e.rateLimitResource.Load(resource); ok {
		if resetAt, ok := limit.Load(identifier); ok {
			if resetAt.After(time.Now()) {
				return wrapRateLimit(resetAt.Unix())
			}

			// If the rate limit is reset, delete the limit for this resource.
			limit.Delete(identifier)
		}
	}

	return nil
}

func (e *Endpoint) checkTooManyRequest(resp *api.Response, resource, identifier string) error {
	if resp.Code == http.StatusTooManyRequests {
		resetAt, err := strconv.Atoi(resp.Header.Get("X-Ratelimit-Reset"))
		if err != nil {
			return err
		}

		resourceLimiter, _ := e.rateLimitResource.LoadOrStore(resource, xsync.NewMapOf[time.Time]())
		resourceLimiter.Store(identifier, time.Unix(int64(resetAt), 0))
		return wrapRateLimit(int64(resetAt))
	}

	return nil
}
