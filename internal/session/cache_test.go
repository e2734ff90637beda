package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-be-svc/internal/models"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

type failingPersistence struct {
	err error
}

func (f failingPersistence) Load(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingPersistence) Save(context.Context, string, []byte) error   { return f.err }
func (f failingPersistence) Delete(context.Context, string) error         { return f.err }

func newTestCache(p Persistence) *Cache {
	return NewCache(p, "lv_current_user", logger.NewNopLogger())
}

func TestCache_GetAbsent(t *testing.T) {
	cache := newTestCache(NewMemoryPersistence())

	user, err := cache.Get(context.Background())
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNoSession))
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(NewMemoryPersistence())

	in := models.UserRecord{"id": 1, "name": "A", "phone": "555"}
	require.NoError(t, cache.Set(ctx, in))

	out, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), out["id"])
	assert.Equal(t, "A", out["name"])
	assert.True(t, in.Equal(out))
}

func TestCache_SetReplaces(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(NewMemoryPersistence())

	require.NoError(t, cache.Set(ctx, models.UserRecord{"id": "1", "name": "A"}))
	require.NoError(t, cache.Set(ctx, models.UserRecord{"id": "2"}))

	out, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UserRecord{"id": "2"}, out)
}

func TestCache_SetNil(t *testing.T) {
	cache := newTestCache(NewMemoryPersistence())
	assert.Error(t, cache.Set(context.Background(), nil))
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(NewMemoryPersistence())

	require.NoError(t, cache.Set(ctx, models.UserRecord{"id": "1"}))
	require.NoError(t, cache.Clear(ctx))
	require.NoError(t, cache.Clear(ctx))

	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCache_UndecodablePayloadIsAbsent(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersistence()
	cache := newTestCache(p)

	for _, raw := range []string{"not json", "null", "[1,2]"} {
		require.NoError(t, p.Save(ctx, cache.Key(), []byte(raw)))
		_, err := cache.Get(ctx)
		assert.ErrorIs(t, err, ErrNoSession, raw)
	}
}

func TestCache_PersistenceFailure(t *testing.T) {
	boom := errors.New("disk gone")
	cache := newTestCache(failingPersistence{err: boom})

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, cache.Set(context.Background(), models.UserRecord{"id": "1"}), boom)
	assert.ErrorIs(t, cache.Clear(context.Background()), boom)
}

func TestCache_SurvivesNewInstance(t *testing.T) {
	ctx := context.Background()
	p := NewFilePersistence(t.TempDir())

	require.NoError(t, newTestCache(p).Set(ctx, models.UserRecord{"email": "a@b.c"}))

	out, err := newTestCache(p).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", out["email"])
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(NewMemoryPersistence())
	notifier := NewNotifier(logger.NewNopLogger())

	var seen []models.UserRecord
	notifier.Subscribe(func(user models.UserRecord) {
		cached, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", cached["name"])
		seen = append(seen, user)
	})

	require.NoError(t, Publish(ctx, cache, notifier, models.UserRecord{"name": "A"}))
	require.Len(t, seen, 1)
	assert.Equal(t, "A", seen[0]["name"])
}

func TestPublish_SaveFailureDoesNotNotify(t *testing.T) {
	cache := newTestCache(failingPersistence{err: errors.New("boom")})
	notifier := NewNotifier(logger.NewNopLogger())

	called := false
	notifier.Subscribe(func(models.UserRecord) { called = true })

	assert.Error(t, Publish(context.Background(), cache, notifier, models.UserRecord{"id": "1"}))
	assert.False(t, called)
}
