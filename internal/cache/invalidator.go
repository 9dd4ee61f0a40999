// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/redis/go-redis/v9"
)

const directoryChanged = "directory-changed"

var (
	ErrPublishing  = errors.New("failed to publish directory change")
	ErrSubscribing = errors.New("failed to subscribe to directory changes")
)

// Notifier announces that the directory has changed.
type Notifier interface {
	Publish(ctx context.Context) error
}

// NopNotifier is used when no Redis address is configured.
type NopNotifier struct{}

func (NopNotifier) Publish(context.Context) error { return nil }

// Invalidator broadcasts directory changes over a Redis channel.
type Invalidator struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

// NewInvalidator connects to the Redis server in cfg.
func NewInvalidator(cfg config.Redis, log *logger.Logger) *Invalidator {
	log.Debug().Str("address", cfg.Address).Str("channel", cfg.Channel).Msg("creating directory invalidator")
	return &Invalidator{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
		}),
		channel: cfg.Channel,
		logger:  log,
	}
}

// Publish notifies every subscribed instance.
func (i *Invalidator) Publish(ctx context.Context) error {
	if err := i.client.Publish(ctx, i.channel, directoryChanged).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Invalidator.Publish").Msg("failed to publish directory change")
		return fmt.Errorf("%w: %w", ErrPublishing, err)
	}
	return nil
}

// Listen calls purge for every message on the channel until ctx is done.
// It fails only when the subscription cannot be established.
func (i *Invalidator) Listen(ctx context.Context, purge func(context.Context)) error {
	pubsub := i.client.Subscribe(ctx, i.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		i.logger.Err(err).Str("func", "Invalidator.Listen").Msg("failed to subscribe")
		return fmt.Errorf("%w: %w", ErrSubscribing, err)
	}
	i.logger.Info().Str("channel", i.channel).Msg("listening for directory changes")

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			i.logger.Debug().Str("payload", msg.Payload).Msg("directory change received")
			purge(ctx)
		}
	}
}

// Close releases the Redis connection pool.
func (i *Invalidator) Close() error {
	return i.client.Close()
}
