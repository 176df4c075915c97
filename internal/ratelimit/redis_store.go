package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript trims the window, admits the hit only while the set
// holds fewer than the limit, and returns {count, allowed, oldest score}.
var slidingWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[2])
local count = redis.call('ZCARD', KEYS[1])
local allowed = 0
if count < tonumber(ARGV[3]) then
	redis.call('ZADD', KEYS[1], ARGV[1], ARGV[5])
	count = count + 1
	allowed = 1
end
local oldest = ARGV[1]
local first = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
if #first > 0 then
	oldest = first[2]
end
if allowed == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[4])
end
return {count, allowed, oldest}
`)

// RedisStore keeps one sorted set per key, scored by hit time in
// microseconds, so every API instance shares the same window.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration, limit int) (Result, error) {
	now := s.now()
	nowScore := now.UnixMicro()
	cutoff := now.Add(-window).UnixMicro()
	member := strconv.FormatInt(nowScore, 10) + ":" + uuid.NewString()

	raw, err := slidingWindowScript.Run(ctx, s.rdb, []string{s.prefix + key},
		nowScore, cutoff, limit, window.Milliseconds(), member,
	).Slice()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit increment %s: %w", key, err)
	}
	if len(raw) != 3 {
		return Result{}, fmt.Errorf("rate limit increment %s: unexpected reply %v", key, raw)
	}

	count, _ := raw[0].(int64)
	allowed, _ := raw[1].(int64)
	oldest, _ := raw[2].(string)
	oldestScore, err := strconv.ParseFloat(oldest, 64)
	if err != nil {
		return Result{}, fmt.Errorf("rate limit increment %s: oldest score %q: %w", key, oldest, err)
	}

	return Result{
		Allowed: allowed == 1,
		Count:   int(count),
		ResetAt: time.UnixMicro(int64(oldestScore)).Add(window),
	}, nil
}
