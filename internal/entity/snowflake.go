package entity

import (
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
)

// discordEpoch is the first millisecond of 2015, which Discord snowflakes
// count from instead of the twitter epoch.
const discordEpoch = 1420070400000

func init() {
	snowflake.Epoch = discordEpoch
}

// Snowflake is the ID type shared by every Discord entity. The zero value is
// not a valid ID.
type Snowflake uint64

func ParseSnowflake(s string) (Snowflake, error) {
	id, err := snowflake.ParseString(s)
	if err != nil {
		return 0, err
	}

	return Snowflake(id.Int64()), nil
}

// MustSnowflake panics on an unparsable ID. Only for constants and tests.
func MustSnowflake(s string) Snowflake {
	id, err := ParseSnowflake(s)
	if err != nil {
		panic(err)
	}

	return id
}

func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Time returns the timestamp embedded in the ID.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(snowflake.ID(s).Time())
}

func (s Snowflake) IsZero() bool {
	return s == 0
}
