package sortedstorage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/redis/go-redis/v9"
)

const rankingKeyPrefix = "leaderboard:dimension:"

// addIfFilled inserts a member only into a set that already exists, so a
// single new score never stands in for a dimension that was not filled.
var addIfFilled = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("ZADD", KEYS[1], ARGV[1], ARGV[2])
end
return 0
`)

// RedisRanking keeps one sorted set per maze dimension, scored by completion time.
type RedisRanking struct {
	client *redis.Client
	ttl    time.Duration
}

// member is the stored form of a score. The ID keeps equal-looking scores apart.
type member struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Time      float64 `json:"time"`
	Dimension int     `json:"dimension"`
	Timestamp string  `json:"timestamp"`
}

func encodeMember(s domain.Score) (string, error) {
	b, err := json.Marshal(member{
		ID:        s.ID,
		Name:      s.Name,
		Time:      s.Time,
		Dimension: s.Dimension,
		Timestamp: s.Timestamp,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeMember(raw string) (domain.Score, error) {
	var m member
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return domain.Score{}, fmt.Errorf("decoding ranking member: %w", err)
	}
	return domain.Score{
		ID:        m.ID,
		Name:      m.Name,
		Time:      m.Time,
		Dimension: m.Dimension,
		Timestamp: m.Timestamp,
	}, nil
}

// NewRedisRanking initializes a RedisRanking with the provided Redis client and TTL.
func NewRedisRanking(client *redis.Client, ttlSeconds int) *RedisRanking {
	return &RedisRanking{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func rankingKey(dimension int) string {
	return fmt.Sprintf("%s%d", rankingKeyPrefix, dimension)
}

// Add stores a score in its dimension's set if that set is filled.
func (r *RedisRanking) Add(ctx context.Context, score domain.Score) error {
	m, err := encodeMember(score)
	if err != nil {
		return err
	}
	return addIfFilled.Run(ctx, r.client, []string{rankingKey(score.Dimension)}, score.Time, m).Err()
}

// Fill replaces a dimension's set with scores and starts its expiration.
func (r *RedisRanking) Fill(ctx context.Context, dimension int, scores []domain.Score) error {
	members := make([]redis.Z, 0, len(scores))
	for _, s := range scores {
		m, err := encodeMember(s)
		if err != nil {
			return err
		}
		members = append(members, redis.Z{Score: s.Time, Member: m})
	}

	key := rankingKey(dimension)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(members) == 0 {
			return nil
		}
		pipe.ZAdd(ctx, key, members...)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	return err
}

// Top retrieves up to limit scores with the lowest times.
func (r *RedisRanking) Top(ctx context.Context, dimension int, limit int64) ([]domain.Score, error) {
	raw, err := r.client.ZRange(ctx, rankingKey(dimension), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]domain.Score, 0, len(raw))
	for _, m := range raw {
		s, err := decodeMember(m)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// Clear deletes the sets of every dimension.
func (r *RedisRanking) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(domain.ValidDimensions))
	for _, d := range domain.ValidDimensions {
		keys = append(keys, rankingKey(d))
	}
	return r.client.Del(ctx, keys...).Err()
}
