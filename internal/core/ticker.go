package core

// TickerFunc is called on the main thread. Returning false unregisters it.
type TickerFunc func(deltaTime float32) bool

type tickerEntry struct {
	handle  Handle
	fn      TickerFunc
	delay   float32
	elapsed float32
	removed bool
}

// Ticker runs registered callbacks once per frame. It is not safe for
// concurrent use; everything goes through the main loop.
type Ticker struct {
	next    Handle
	entries []*tickerEntry
}

func NewTicker() *Ticker {
	return &Ticker{}
}

// AddTicker registers fn. A delay of 0 fires every tick, otherwise fn fires
// each time at least delay seconds have accumulated.
func (t *Ticker) AddTicker(fn TickerFunc, delay float32) Handle {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	t.next++
	t.entries = append(t.entries, &tickerEntry{handle: t.next, fn: fn, delay: delay})
	return t.next
}

// RemoveTicker unregisters the callback for h. Safe to call from inside a
// ticker callback; unknown handles are ignored.
func (t *Ticker) RemoveTicker(h Handle) {
	if !h.IsValid() {
		return
	}
	for i, e := range t.entries {
		if e.handle == h {
			e.removed = true
			t.entries = append(t.entries[:i:i], t.entries[i+1:]...)
			return
		}
	}
}

// Tick advances all callbacks by deltaTime.
func (t *Ticker) Tick(deltaTime float32) {
	snapshot := append([]*tickerEntry(nil), t.entries...)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		if e.delay > 0 {
			e.elapsed += deltaTime
			if e.elapsed < e.delay {
				continue
			}
			elapsed := e.elapsed
			e.elapsed = 0
			if !e.fn(elapsed) {
				t.RemoveTicker(e.handle)
			}
			continue
		}
		if !e.fn(deltaTime) {
			t.RemoveTicker(e.handle)
		}
	}
}

// Len returns the number of live callbacks.
func (t *Ticker) Len() int { return len(t.entries) }
