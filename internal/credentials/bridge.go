// Package credentials carries the synchronous API-key prompt across the
// UI/runtime boundary. The runtime blocks in Prompt while the frontend
// collects the secret and replies on a side channel - the reply cannot
// travel back over the event bus because the runtime loop is the one
// waiting.
package credentials

import (
	"sync"

	"github.com/hoshinoya/dogepet/internal/eventbus"
)

type reply struct {
	key string
	ok  bool
}

type Bridge struct {
	bus     *eventbus.EventBus
	replies chan reply
	done    chan struct{}
	once    sync.Once
}

func NewBridge(bus *eventbus.EventBus) *Bridge {
	return &Bridge{
		bus:     bus,
		replies: make(chan reply, 1),
		done:    make(chan struct{}),
	}
}

// Prompt asks the frontend for the key and blocks until the user answers
// or the bridge is closed. ok is false on cancellation.
func (b *Bridge) Prompt() (string, bool) {
	if err := b.bus.SendToUI(eventbus.CredentialRequestEvent{}); err != nil {
		return "", false
	}
	select {
	case r := <-b.replies:
		return r.key, r.ok
	case <-b.done:
		return "", false
	}
}

// Reply delivers the user's answer. Extra replies are dropped.
func (b *Bridge) Reply(key string, ok bool) {
	select {
	case b.replies <- reply{key: key, ok: ok}:
	default:
	}
}

// Close releases any blocked Prompt; used during shutdown.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}
