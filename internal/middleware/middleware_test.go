package middleware

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"relaybot/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestRecover_ConvertsPanicToError(t *testing.T) {
	handler := Recover(testutil.NewTestLogger())(func(c tele.Context) error {
		panic("boom")
	})

	err := handler(testutil.NewFakeContext(1, "hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRecover_PassesThroughErrors(t *testing.T) {
	expected := errors.New("failed")
	handler := Recover(testutil.NewTestLogger())(func(c tele.Context) error {
		return expected
	})

	assert.ErrorIs(t, handler(testutil.NewFakeContext(1, "hello")), expected)
}

func TestLogging_SetsTraceID(t *testing.T) {
	var seen string
	handler := Logging(testutil.NewTestLogger())(func(c tele.Context) error {
		seen, _ = c.Get(TraceIDKey).(string)
		return nil
	})

	c := testutil.NewFakeContext(1, "hello")
	require.NoError(t, handler(c))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, c.Get(TraceIDKey))
}

func TestLogging_ReturnsHandlerError(t *testing.T) {
	expected := errors.New("failed")
	handler := Logging(testutil.NewTestLogger())(func(c tele.Context) error {
		return expected
	})

	assert.ErrorIs(t, handler(testutil.NewFakeCallback(1, "check_subscription")), expected)
}

func TestUpdateKind(t *testing.T) {
	assert.Equal(t, "callback", updateKind(testutil.NewFakeCallback(1, "x")))
	assert.Equal(t, "command", updateKind(testutil.NewFakeContext(1, "/start")))
	assert.Equal(t, "text", updateKind(testutil.NewFakeContext(1, "hello")))
}

func TestUserLock_SerializesSameUser(t *testing.T) {
	locks := NewUserLock()

	var active, maxActive int32
	handler := locks.Middleware(func(c tele.Context) error {
		n := atomic.AddInt32(&active, 1)
		for {
			m := atomic.LoadInt32(&maxActive)
			if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = handler(testutil.NewFakeContext(7, "hello"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
}

func TestUserLock_DifferentUsersDoNotBlock(t *testing.T) {
	locks := NewUserLock()

	release := make(chan struct{})
	entered := make(chan int64, 2)
	handler := locks.Middleware(func(c tele.Context) error {
		entered <- c.Sender().ID
		<-release
		return nil
	})

	var wg sync.WaitGroup
	for _, id := range []int64{1, 2} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = handler(testutil.NewFakeContext(id, "hello"))
		}(id)
	}

	// Both users must be inside the handler at the same time
	for i := 0; i < 2; i++ {
		select {
		case <-entered:
		case <-time.After(time.Second):
			t.Fatal("second user was blocked by the first")
		}
	}
	close(release)
	wg.Wait()
}
