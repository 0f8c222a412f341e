package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	RoutineKeyPrefix = "routine:%d"
	RoutineListKey   = "routines:recent"
)

const (
	UserTTL        = 5 * time.Minute
	RoutineTTL     = 10 * time.Minute
	RoutineListTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func RoutineKey(routineID uint) string {
	return fmt.Sprintf(RoutineKeyPrefix, routineID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateRoutine drops both the item entry and the recent list, since the
// list embeds routine payloads.
func InvalidateRoutine(ctx context.Context, routineID uint) {
	Invalidate(ctx, RoutineKey(routineID))
	Invalidate(ctx, RoutineListKey)
}

func InvalidateRoutineList(ctx context.Context) {
	Invalidate(ctx, RoutineListKey)
}
