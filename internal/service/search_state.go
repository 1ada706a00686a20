package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchPendingKeyPrefix = "search:pending:"

// SearchStateService holds the per-user "waiting for speciality search
// text" mark. The mark expires on its own; nothing else is stored about a
// conversation.
type SearchStateService struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSearchStateService(redisClient *redis.Client, ttl time.Duration) *SearchStateService {
	return &SearchStateService{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *SearchStateService) SetPending(ctx context.Context, userID int64) error {
	return s.redisClient.Set(ctx, searchKey(userID), "1", s.ttl).Err()
}

func (s *SearchStateService) IsPending(ctx context.Context, userID int64) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, searchKey(userID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *SearchStateService) Clear(ctx context.Context, userID int64) error {
	return s.redisClient.Del(ctx, searchKey(userID)).Err()
}

func searchKey(userID int64) string {
	return fmt.Sprintf("%s%d", searchPendingKeyPrefix, userID)
}
