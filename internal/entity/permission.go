package entity

type PermissionFlag uint64

const (
	CREATE_INSTANT_INVITE PermissionFlag = 1 << iota
	KICK_MEMBERS
	BAN_MEMBERS
	ADMINISTRATOR
	MANAGE_CHANNELS
	MANAGE_GUILD
	ADD_REACTIONS
	VIEW_AUDIT_LOG
	PRIORITY_SPEAKER
	STREAM
	VIEW_CHANNEL
	SEND_MESSAGES
	SEND_TTS_MESSAGES
	MANAGE_MESSAGES
	EMBED_LINKS
	ATTACH_FILES
	READ_MESSAGE_HISTORY
	MENTION_EVERYONE
	USE_EXTERNAL_EMOJIS
	VIEW_GUILD_INSIGHTS
	CONNECT
	SPEAK
	MUTE_MEMBERS
	DEAFEN_MEMBERS
	MOVE_MEMBERS
	USE_VAD
	CHANGE_NICKNAME
	MANAGE_NICKNAMES
	MANAGE_ROLES
	MANAGE_WEBHOOKS
	MANAGE_EMOJIS

	lastPermissionFlag
)

var permissionNames = map[PermissionFlag]string{
	CREATE_INSTANT_INVITE: "CREATE_INSTANT_INVITE",
	KICK_MEMBERS:          "KICK_MEMBERS",
	BAN_MEMBERS:           "BAN_MEMBERS",
	ADMINISTRATOR:         "ADMINISTRATOR",
	MANAGE_CHANNELS:       "MANAGE_CHANNELS",
	MANAGE_GUILD:          "MANAGE_GUILD",
	ADD_REACTIONS:         "ADD_REACTIONS",
	VIEW_AUDIT_LOG:        "VIEW_AUDIT_LOG",
	PRIORITY_SPEAKER:      "PRIORITY_SPEAKER",
	STREAM:                "STREAM",
	VIEW_CHANNEL:          "VIEW_CHANNEL",
	SEND_MESSAGES:         "SEND_MESSAGES",
	SEND_TTS_MESSAGES:     "SEND_TTS_MESSAGES",
	MANAGE_MESSAGES:       "MANAGE_MESSAGES",
	EMBED_LINKS:           "EMBED_LINKS",
	ATTACH_FILES:          "ATTACH_FILES",
	READ_MESSAGE_HISTORY:  "READ_MESSAGE_HISTORY",
	MENTION_EVERYONE:      "MENTION_EVERYONE",
	USE_EXTERNAL_EMOJIS:   "USE_EXTERNAL_EMOJIS",
	VIEW_GUILD_INSIGHTS:   "VIEW_GUILD_INSIGHTS",
	CONNECT:               "CONNECT",
	SPEAK:                 "SPEAK",
	MUTE_MEMBERS:          "MUTE_MEMBERS",
	DEAFEN_MEMBERS:        "DEAFEN_MEMBERS",
	MOVE_MEMBERS:          "MOVE_MEMBERS",
	USE_VAD:               "USE_VAD",
	CHANGE_NICKNAME:       "CHANGE_NICKNAME",
	MANAGE_NICKNAMES:      "MANAGE_NICKNAMES",
	MANAGE_ROLES:          "MANAGE_ROLES",
	MANAGE_WEBHOOKS:       "MANAGE_WEBHOOKS",
	MANAGE_EMOJIS:         "MANAGE_EMOJIS",
}

func (f PermissionFlag) String() string {
	if name, ok := permissionNames[f]; ok {
		return name
	}

	return "UNKNOWN"
}

// PermissionSet is an immutable bitset over PermissionFlag.
type PermissionSet uint64

// AllPermissions grants every defined flag. Guild owners resolve to this set
// regardless of their roles.
const AllPermissions = PermissionSet(lastPermissionFlag - 1)

func NewPermissionSet(flags ...PermissionFlag) PermissionSet {
	var set PermissionSet
	for _, f := range flags {
		set |= PermissionSet(f)
	}

	return set
}

func (s PermissionSet) Union(other PermissionSet) PermissionSet {
	return s | other
}

func (s PermissionSet) Has(flag PermissionFlag) bool {
	return uint64(s)&uint64(flag) != 0
}

// Contains reports whether every bit of other is also in s.
func (s PermissionSet) Contains(other PermissionSet) bool {
	return s&other == other
}

// Names returns the names of all granted flags in bit order.
func (s PermissionSet) Names() []string {
	var names []string
	for f := CREATE_INSTANT_INVITE; f < lastPermissionFlag; f <<= 1 {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}

	return names
}
