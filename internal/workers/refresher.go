// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// DefaultRefreshInterval is used when the configured interval is not
// positive.
const DefaultRefreshInterval = 5 * time.Minute

// RefreshFunc receives the outcome of every refresh.
type RefreshFunc func(todos []models.Todo, err error)

// CacheRefresher keeps the local todo cache of one owner fresh by calling
// TodoRefresher.Refresh on a ticker.
type CacheRefresher struct {
	refresher TodoRefresher
	ownerID   string
	interval  time.Duration
	onRefresh RefreshFunc

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCacheRefresher creates an idle refresher. onRefresh may be nil.
func NewCacheRefresher(refresher TodoRefresher, ownerID string, interval time.Duration, onRefresh RefreshFunc, logger *logger.Logger) *CacheRefresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &CacheRefresher{
		refresher: refresher,
		ownerID:   ownerID,
		interval:  interval,
		onRefresh: onRefresh,
		logger:    logger,
	}
}

// Start stops any previous run and launches the ticker goroutine. The first
// refresh happens one interval after Start.
func (c *CacheRefresher) Start(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(c.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				c.refresh(jobCtx)
			}
		}
	}()
}

func (c *CacheRefresher) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

func (c *CacheRefresher) refresh(ctx context.Context) {
	todos, err := c.refresher.Refresh(ctx, c.ownerID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.Warn().Err(err).Str("func", "*CacheRefresher.refresh").Msg("background refresh failed")
	} else {
		c.logger.Debug().Int("todos", len(todos)).Msg("todo cache refreshed")
	}

	if c.onRefresh != nil {
		c.onRefresh(todos, err)
	}
}
