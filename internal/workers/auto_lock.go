// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/session"
)

const defaultAutoLockInterval = 10 * time.Second

// AutoLocker locks the vault session once it has been idle for longer than
// the configured timeout. A zero timeout disables it.
type AutoLocker struct {
	session  IdleLocker
	timeout  time.Duration
	interval time.Duration
	onLock   func()
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLocker creates an idle AutoLocker. onLock, if not nil, is called
// from the worker goroutine after every automatic lock.
func NewAutoLocker(s IdleLocker, timeout, interval time.Duration, onLock func(), log *logger.Logger) *AutoLocker {
	if interval <= 0 {
		interval = defaultAutoLockInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AutoLocker{
		session:  s,
		timeout:  timeout,
		interval: interval,
		onLock:   onLock,
		logger:   log,
	}
}

// Start implements Worker. Any previously running loop is stopped first.
func (a *AutoLocker) Start(ctx context.Context) {
	if a.timeout <= 0 {
		a.logger.Info().Msg("auto-lock disabled")
		return
	}

	a.Stop()

	a.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(a.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				a.check()
			}
		}
	}()
}

// Stop implements Worker.
func (a *AutoLocker) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

// check locks the session if it is unlocked and idle for at least timeout.
// It reports whether it locked.
func (a *AutoLocker) check() bool {
	if a.session.State() != session.Unlocked {
		return false
	}

	idle := a.session.IdleFor()
	if idle < a.timeout {
		return false
	}

	a.session.Lock()
	a.logger.Info().Dur("idle", idle).Msg("vault auto-locked")

	if a.onLock != nil {
		a.onLock()
	}
	return true
}
