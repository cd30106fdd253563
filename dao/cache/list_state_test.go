package cache

import (
	"Agora/types"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*ListStateStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewListStateStorage(client), mr
}

func TestListState_SetGet(t *testing.T) {
	storage, mr := newTestStorage(t)
	ctx := context.Background()

	state := &types.ListState{Page: 3, Kw: "golang", So: types.SortRecommend}
	require.NoError(t, storage.Set(ctx, "sess-1", state))

	got, err := storage.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, got)

	// 状态跟随会话过期
	assert.Equal(t, listStateTTL, mr.TTL("session:lp:sess-1"))
}

func TestListState_GetMissing(t *testing.T) {
	storage, _ := newTestStorage(t)

	got, err := storage.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListState_Overwrite(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "sess-1", &types.ListState{Page: 1, So: types.SortRecent}))
	require.NoError(t, storage.Set(ctx, "sess-1", &types.ListState{Page: 2, Kw: "go", So: types.SortPopular}))

	got, err := storage.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, "go", got.Kw)
	assert.Equal(t, types.SortPopular, got.So)
}
