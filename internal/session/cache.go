package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hostel-be-svc/internal/models"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// ErrNoSession is returned by Cache.Get when no user is stored
var ErrNoSession = apperrors.NewNoSessionError("No user logged in.")

// Cache is the single slot holding the last-known logged-in user. Writes are
// last-writer-wins; there is no locking beyond what the Persistence provides.
type Cache struct {
	persistence Persistence
	key         string
	logger      *logger.Logger
}

// NewCache creates a cache storing its record under key
func NewCache(persistence Persistence, key string, logger *logger.Logger) *Cache {
	return &Cache{
		persistence: persistence,
		key:         key,
		logger:      logger,
	}
}

// Key returns the well-known slot key
func (c *Cache) Key() string {
	return c.key
}

// Set replaces the stored user
func (c *Cache) Set(ctx context.Context, user models.UserRecord) error {
	if user == nil {
		return fmt.Errorf("refusing to cache a nil user")
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := c.persistence.Save(ctx, c.key, payload); err != nil {
		c.logger.WithError(err).WithField("key", c.key).Error("Failed to save session")
		return err
	}
	return nil
}

// Get returns the stored user or ErrNoSession. A slot that cannot be decoded
// is treated as absent.
func (c *Cache) Get(ctx context.Context) (models.UserRecord, error) {
	payload, err := c.persistence.Load(ctx, c.key)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		c.logger.WithError(err).WithField("key", c.key).Error("Failed to load session")
		return nil, err
	}

	var user models.UserRecord
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&user); err != nil {
		c.logger.WithError(err).WithField("key", c.key).Warn("Discarding undecodable session payload")
		return nil, ErrNoSession
	}
	if user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}

// Clear removes the stored user
func (c *Cache) Clear(ctx context.Context) error {
	err := c.persistence.Delete(ctx, c.key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		c.logger.WithError(err).WithField("key", c.key).Error("Failed to clear session")
		return err
	}
	return nil
}

// Publish stores user and then broadcasts it to every subscriber
func Publish(ctx context.Context, cache *Cache, notifier *Notifier, user models.UserRecord) error {
	if err := cache.Set(ctx, user); err != nil {
		return err
	}
	notifier.Notify(user)
	return nil
}
