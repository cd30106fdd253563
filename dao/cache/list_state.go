package cache

import (
	"Agora/types"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 会话里"最近一次列表参数"的保存时长，跟随会话生命周期
const listStateTTL = 14 * 24 * time.Hour

// ListStateStorage 会话级列表状态存储
// 列表页写入，详情页读出，用于"返回列表"时还原页码/关键字/排序
type ListStateStorage struct {
	redis *redis.Client
}

func NewListStateStorage(redis *redis.Client) *ListStateStorage {
	return &ListStateStorage{redis: redis}
}

func (s *ListStateStorage) Set(ctx context.Context, sid string, state *types.ListState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.key(sid), data, listStateTTL).Err()
}

// Get 读取会话的列表状态，没有记录时返回 nil
func (s *ListStateStorage) Get(ctx context.Context, sid string) (*types.ListState, error) {
	data, err := s.redis.Get(ctx, s.key(sid)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var state types.ListState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *ListStateStorage) key(sid string) string {
	return fmt.Sprintf("session:lp:%s", sid)
}
