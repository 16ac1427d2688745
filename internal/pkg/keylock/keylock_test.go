//go:build unit

package keylock_test

import (
	"sync"
	"testing"
	"time"

	"hall-booking/internal/pkg/keylock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := keylock.New()
	key := uuid.New()

	var mu sync.Mutex
	var active, maxActive int

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := kl.Lock(key)
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "holders of the same key must never overlap")
}

func TestKeyLock_DisjointKeysDoNotBlock(t *testing.T) {
	kl := keylock.New()
	a, b := uuid.New(), uuid.New()

	unlockA := kl.Lock(a)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := kl.Lock(b)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyLock_DuplicateAndReversedKeys(t *testing.T) {
	kl := keylock.New()
	a, b := uuid.New(), uuid.New()

	// Duplicate keys in one call must not self-deadlock.
	unlock := kl.Lock(a, a, b)
	unlock()

	// Opposite acquisition orders must not deadlock each other.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			u := kl.Lock(a, b)
			u()
		}()
		go func() {
			defer wg.Done()
			u := kl.Lock(b, a)
			u()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock between opposite key orders")
	}
}
