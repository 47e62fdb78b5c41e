package rotation

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex hands out one mutex per session id. All rotation state is
// scoped to a single session, so this is the whole serialization story:
// two requests against the same session run one at a time, requests
// against different sessions never contend.
//
// Entries are never evicted. A mutex is a few dozen bytes and the number
// of sessions a single process sees is small; an eviction scheme would
// cost more than it saves.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// lock acquires the mutex for key and returns the matching unlock.
func (k *keyedMutex) lock(key uuid.UUID) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
