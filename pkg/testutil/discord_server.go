package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"

	"github.com/questx-lab/discord/pkg/api/discord"
)

const iso8601 = "2006-01-02T15:04:05.000000+00:00"

// NewDiscordServer starts a mock Discord API server backed by a fixed guild
// fixture. Point config.DiscordConfigs.APIURL at its URL to test the real
// endpoint against it. The caller owns the server and must Close it.
func NewDiscordServer(guild discord.Guild, members []discord.Member) *httptest.Server {
	sorted := make([]discord.Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return snowflakeLess(sorted[i].UserID, sorted[j].UserID)
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bot ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"code": 0, "message": "401: Unauthorized"})
			return
		}

		segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(segments) < 2 || segments[0] != "guilds" || segments[1] != guild.ID {
			writeJSON(w, http.StatusNotFound, map[string]any{"code": 10004, "message": "Unknown Guild"})
			return
		}

		switch {
		case len(segments) == 2:
			writeJSON(w, http.StatusOK, guildJSON(guild))

		case len(segments) == 3 && segments[2] == "roles":
			roles := []any{}
			for _, role := range guild.Roles {
				roles = append(roles, roleJSON(role))
			}
			writeJSON(w, http.StatusOK, roles)

		case len(segments) == 3 && segments[2] == "members":
			writeJSON(w, http.StatusOK, memberPage(sorted, r))

		case len(segments) == 4 && segments[2] == "members":
			for _, member := range sorted {
				if member.UserID == segments[3] {
					if r.Method == http.MethodDelete {
						w.WriteHeader(http.StatusNoContent)
						return
					}

					writeJSON(w, http.StatusOK, memberJSON(member))
					return
				}
			}
			writeJSON(w, http.StatusNotFound, map[string]any{"code": 10007, "message": "Unknown Member"})

		case len(segments) == 6 && segments[2] == "members" && segments[4] == "roles":
			w.WriteHeader(http.StatusNoContent)

		case len(segments) == 4 && segments[2] == "bans":
			w.WriteHeader(http.StatusNoContent)

		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"code": 0, "message": "404: Not Found"})
		}
	})

	return httptest.NewServer(mux)
}

func memberPage(members []discord.Member, r *http.Request) []any {
	limit := 1000
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	after := r.URL.Query().Get("after")

	page := []any{}
	for _, member := range members {
		if after != "" && !snowflakeLess(after, member.UserID) {
			continue
		}

		page = append(page, memberJSON(member))
		if len(page) == limit {
			break
		}
	}

	return page
}

func snowflakeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

func guildJSON(guild discord.Guild) map[string]any {
	roles := []any{}
	for _, role := range guild.Roles {
		roles = append(roles, roleJSON(role))
	}

	return map[string]any{
		"id":       guild.ID,
		"name":     guild.Name,
		"owner_id": guild.OwnerID,
		"roles":    roles,
	}
}

func roleJSON(role discord.Role) map[string]any {
	return map[string]any{
		"id":          role.ID,
		"name":        role.Name,
		"permissions": role.Permissions,
		"position":    role.Position,
		"color":       role.Color,
		"hoist":       role.Hoist,
		"managed":     role.Managed,
		"mentionable": role.Mentionable,
	}
}

func memberJSON(member discord.Member) map[string]any {
	roles := []any{}
	for _, id := range member.RoleIDs {
		roles = append(roles, id)
	}

	return map[string]any{
		"user": map[string]any{
			"id":            member.UserID,
			"username":      member.Username,
			"discriminator": member.Discriminator,
			"avatar":        member.Avatar,
			"bot":           member.Bot,
		},
		"nick":      member.Nickname,
		"joined_at": member.JoinedAt.UTC().Format(iso8601),
		"roles":     roles,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		panic(err)
	}
}
