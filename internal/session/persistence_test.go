package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestPersistenceContract(t *testing.T) {
	backends := map[string]func(t *testing.T) Persistence{
		"memory": func(t *testing.T) Persistence { return NewMemoryPersistence() },
		"file":   func(t *testing.T) Persistence { return NewFilePersistence(t.TempDir()) },
		"redis": func(t *testing.T) Persistence {
			_, client := newTestRedis(t)
			return NewRedisPersistence(client, "hostel:session:")
		},
	}

	for name, build := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := build(t)

			_, err := p.Load(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, p.Save(ctx, "k", []byte(`{"a":1}`)))
			got, err := p.Load(ctx, "k")
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":1}`, string(got))

			require.NoError(t, p.Save(ctx, "k", []byte(`{"a":2}`)))
			got, err = p.Load(ctx, "k")
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":2}`, string(got))

			require.NoError(t, p.Delete(ctx, "k"))
			require.NoError(t, p.Delete(ctx, "k"))
			_, err = p.Load(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestMemoryPersistence_CopiesPayload(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersistence()

	payload := []byte("abc")
	require.NoError(t, p.Save(ctx, "k", payload))
	payload[0] = 'x'

	got, err := p.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFilePersistence_FileLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	p := NewFilePersistence(dir)

	require.NoError(t, p.Save(context.Background(), "lv_current_user", []byte("{}")))

	info, err := os.Stat(filepath.Join(dir, "lv_current_user.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFilePersistence_SanitizesKey(t *testing.T) {
	p := NewFilePersistence("/tmp/x")
	assert.Equal(t, filepath.Join("/tmp/x", "___etc_passwd.json"), p.path("../etc/passwd"))
}

func TestRedisPersistence_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	p := NewRedisPersistence(client, "hostel:session:")

	require.NoError(t, p.Save(ctx, "lv_current_user", []byte(`{"id":"7"}`)))

	stored, err := mr.Get("hostel:session:lv_current_user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"7"}`, stored)
	assert.False(t, mr.Exists("lv_current_user"))
	assert.Equal(t, time.Duration(0), mr.TTL("hostel:session:lv_current_user"))

	require.NoError(t, p.Delete(ctx, "lv_current_user"))
	assert.False(t, mr.Exists("hostel:session:lv_current_user"))
}

func TestRedisPersistence_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	p := NewRedisPersistence(client, "hostel:session:")

	_, err := p.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	mr.Close()
	_, err = p.Load(ctx, "missing")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get session from redis")
}
