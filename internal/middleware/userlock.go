package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// UserLock serializes updates from the same user. Updates from different users
// run concurrently.
type UserLock struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewUserLock creates an empty lock table
func NewUserLock() *UserLock {
	return &UserLock{
		locks: make(map[int64]*sync.Mutex),
	}
}

// getLock gets or creates a mutex for specific user
func (l *UserLock) getLock(userID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.locks[userID]; !ok {
		l.locks[userID] = &sync.Mutex{}
	}
	return l.locks[userID]
}

// Middleware holds the sender's lock for the whole handler
func (l *UserLock) Middleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return next(c)
		}

		lock := l.getLock(sender.ID)
		lock.Lock()
		defer lock.Unlock()

		return next(c)
	}
}
