package signal

import "sync"

var (
	defaultMu  sync.Mutex
	defaultBus *Bus
)

// Init creates the process-wide bus. Calling it again replaces the bus and
// drops the old subscriptions.
func Init() *Bus {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultBus != nil {
		defaultBus.Close()
	}
	defaultBus = NewBus()
	return defaultBus
}

// Default returns the process-wide bus, creating it on first use
func Default() *Bus {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultBus == nil {
		defaultBus = NewBus()
	}
	return defaultBus
}

// Teardown closes the process-wide bus
func Teardown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultBus != nil {
		defaultBus.Close()
		defaultBus = nil
	}
}
