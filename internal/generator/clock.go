package generator

import "github.com/jonboulle/clockwork"

// clock stamps generated pages; tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

const timestampLayout = "Jan 2, 2006 at 15:04:05 UTC"

func lastUpdated() string {
	return clock.Now().UTC().Format(timestampLayout)
}
