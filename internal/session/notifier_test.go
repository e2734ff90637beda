package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/pkg/logger"
)

func TestNotifier_DeliversInOrder(t *testing.T) {
	n := NewNotifier(logger.NewNopLogger())

	var order []string
	n.Subscribe(func(models.UserRecord) { order = append(order, "first") })
	n.Subscribe(func(models.UserRecord) { order = append(order, "second") })

	n.Notify(models.UserRecord{"id": "1"})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNotifier_EachListenerGetsACopy(t *testing.T) {
	n := NewNotifier(logger.NewNopLogger())

	var second models.UserRecord
	n.Subscribe(func(u models.UserRecord) { u["name"] = "mutated" })
	n.Subscribe(func(u models.UserRecord) { second = u })

	original := models.UserRecord{"name": "A"}
	n.Notify(original)

	assert.Equal(t, "A", second["name"])
	assert.Equal(t, "A", original["name"])
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier(logger.NewNopLogger())

	calls := 0
	unsubscribe := n.Subscribe(func(models.UserRecord) { calls++ })
	n.Subscribe(func(models.UserRecord) {})
	require.Equal(t, 2, n.Len())

	n.Notify(nil)
	unsubscribe()
	unsubscribe()
	n.Notify(nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, n.Len())
}

func TestNotifier_NoReplayForLateSubscribers(t *testing.T) {
	n := NewNotifier(logger.NewNopLogger())
	n.Notify(models.UserRecord{"id": "1"})

	called := false
	n.Subscribe(func(models.UserRecord) { called = true })
	assert.False(t, called)
}

func TestNotifier_PanickingListenerDoesNotStopDelivery(t *testing.T) {
	n := NewNotifier(logger.NewNopLogger())

	reached := false
	n.Subscribe(func(models.UserRecord) { panic("boom") })
	n.Subscribe(func(models.UserRecord) { reached = true })

	assert.NotPanics(t, func() { n.Notify(models.UserRecord{}) })
	assert.True(t, reached)
}

func TestNotifier_UnsubscribeDuringDelivery(t *testing.T) {
	n := NewNotifier(logger.NewNopLogger())

	var unsubscribe func()
	second := 0
	unsubscribe = n.Subscribe(func(models.UserRecord) { unsubscribe() })
	n.Subscribe(func(models.UserRecord) { second++ })

	n.Notify(nil)
	n.Notify(nil)
	assert.Equal(t, 2, second)
	assert.Equal(t, 1, n.Len())
}
