// Package keylock provides per-key mutual exclusion. Booking holds the
// lock of every requested hall across the availability check and the
// assignment writes; settlement holds the account lock across the balance
// check and the debit. Keys are acquired in sorted order so two attempts
// sharing halls can never deadlock.
package keylock

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

type KeyLock struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (k *KeyLock) get(key uuid.UUID) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires every key and returns the release function. Duplicate
// keys are collapsed; acquisition order is the sorted key order.
func (k *KeyLock) Lock(keys ...uuid.UUID) (unlock func()) {
	distinct := make([]uuid.UUID, 0, len(keys))
	seen := make(map[uuid.UUID]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, key)
	}

	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].String() < distinct[j].String()
	})

	held := make([]*sync.Mutex, 0, len(distinct))
	for _, key := range distinct {
		m := k.get(key)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
