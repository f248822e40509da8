package redis

import (
	"fmt"

	"github.com/mcoot/r6status/internal/model"
)

// Key prefix for all roster data
const keyPrefix = "r6"

// keys builds the Redis keys for a single team
type keys struct {
	team string
}

// roster returns the Redis key for the SET of usernames
func (k keys) roster() string {
	return fmt.Sprintf("%s:%s:players", keyPrefix, k.team)
}

// record returns the Redis key for a player's JSON record
func (k keys) record(username string) string {
	return fmt.Sprintf("%s:%s:player:%s", keyPrefix, k.team, model.UsernameKey(username))
}
