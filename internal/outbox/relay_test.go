package outbox

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageRelayDefaults(t *testing.T) {
	relay := NewMessageRelay(nil, nil, log.New(io.Discard, "", 0))
	require.NotNil(t, relay)

	assert.Equal(t, 5*time.Second, relay.pollingInterval)
	assert.Equal(t, 10, relay.batchSize)
	assert.NotNil(t, relay.done)
	assert.NotNil(t, relay.tracer)
}

// Start/Stop 在首个轮询周期之前完成时不触碰数据库，
// 生命周期本身应当干净退出且不阻塞。
func TestMessageRelayStartStop(t *testing.T) {
	relay := NewMessageRelay(nil, nil, log.New(io.Discard, "", 0))

	relay.Start()

	stopped := make(chan struct{})
	go func() {
		relay.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop未在预期时间内返回")
	}
}
