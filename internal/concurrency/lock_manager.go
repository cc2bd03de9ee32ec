package concurrency

import (
	"sync"
)

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. Entries are dropped once no
// goroutine holds or waits for them, so idle keys cost nothing.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

// Lock blocks until key is held and returns the matching unlock func
func (lm *LockManager) Lock(key string) func() {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		lm.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// LockPair holds two keys, always acquiring them in lexicographic order so
// concurrent pairs over the same keys cannot deadlock. Equal keys are
// locked once.
func (lm *LockManager) LockPair(a, b string) func() {
	if a == b {
		return lm.Lock(a)
	}
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	unlockFirst := lm.Lock(first)
	unlockSecond := lm.Lock(second)
	return func() {
		unlockSecond()
		unlockFirst()
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
