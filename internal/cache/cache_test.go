package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

type fakeStore struct {
	data    map[string]string
	ttls    map[string]time.Duration
	getErrs []error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if len(f.getErrs) > 0 {
		err := f.getErrs[0]
		f.getErrs = f.getErrs[1:]
		return redis.NewStringResult("", err)
	}

	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

type entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

var strategy = retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 1}

func TestJSON_SetGet(t *testing.T) {
	s := newFakeStore()
	c := NewJSON(s, "dashboard", time.Minute, strategy)

	ctx := context.Background()

	var got []entry
	ok, err := c.Get(ctx, "rankings:weekly", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []entry{{Name: "u1", Score: 42}, {Name: "u2", Score: 15}}
	require.NoError(t, c.Set(ctx, "rankings:weekly", want))
	assert.Equal(t, time.Minute, s.ttls["dashboard:rankings:weekly"])

	ok, err = c.Get(ctx, "rankings:weekly", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestJSON_Invalidate(t *testing.T) {
	s := newFakeStore()
	c := NewJSON(s, "meetings", time.Minute, strategy)

	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "upcoming", []entry{{Name: "a"}}))
	require.NoError(t, c.Set(ctx, "8123", entry{Name: "b"}))

	require.NoError(t, c.Invalidate(ctx, "upcoming", "8123"))
	assert.Empty(t, s.data)

	assert.NoError(t, c.Invalidate(ctx))
}

func TestJSON_GetRetriesTransientError(t *testing.T) {
	s := newFakeStore()
	c := NewJSON(s, "p", time.Minute, strategy)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", entry{Name: "x"}))

	s.getErrs = []error{errors.New("i/o timeout")}

	var got entry
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", got.Name)
}

func TestJSON_GetCorrupted(t *testing.T) {
	s := newFakeStore()
	s.data["p:k"] = "{not json"

	c := NewJSON(s, "p", time.Minute, strategy)

	var got entry
	ok, err := c.Get(context.Background(), "k", &got)
	assert.Error(t, err)
	assert.False(t, ok)
}
