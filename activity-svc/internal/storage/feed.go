package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"rik-restaurant/activity-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	RecentKey     = "activity:recent"
	CountsKey     = "activity:counts"
	userKeyPrefix = "activity:user:"
)

func UserKey(identity string) string {
	return userKeyPrefix + identity
}

// Feed keeps capped Redis lists of recent events, newest first, plus a
// per-type counter hash.
type Feed struct {
	Client *redis.Client
	Size   int64
}

func NewFeed(client *redis.Client, size int64) *Feed {
	if size <= 0 {
		size = 100
	}
	return &Feed{Client: client, Size: size}
}

func (f *Feed) Record(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = f.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, RecentKey, payload)
		pipe.LTrim(ctx, RecentKey, 0, f.Size-1)
		if event.Identity != "" {
			key := UserKey(event.Identity)
			pipe.LPush(ctx, key, payload)
			pipe.LTrim(ctx, key, 0, f.Size-1)
		}
		pipe.HIncrBy(ctx, CountsKey, event.Type, 1)
		return nil
	})
	return err
}

func (f *Feed) Recent(ctx context.Context, limit int64) ([]domain.Event, error) {
	return f.read(ctx, RecentKey, limit)
}

func (f *Feed) ForIdentity(ctx context.Context, identity string, limit int64) ([]domain.Event, error) {
	return f.read(ctx, UserKey(identity), limit)
}

func (f *Feed) read(ctx context.Context, key string, limit int64) ([]domain.Event, error) {
	raw, err := f.Client.LRange(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(raw))
	for _, item := range raw {
		var e domain.Event
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("skipping unreadable feed entry")
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func (f *Feed) Counts(ctx context.Context) (domain.Counts, error) {
	raw, err := f.Client.HGetAll(ctx, CountsKey).Result()
	if err != nil {
		return nil, err
	}
	counts := make(domain.Counts, len(raw))
	for typ, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("count for %s: %w", typ, err)
		}
		counts[typ] = n
	}
	return counts, nil
}
