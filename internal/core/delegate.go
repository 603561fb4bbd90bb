package core

// Handle identifies a registered callback so it can be removed later.
// The zero Handle is never issued.
type Handle uint64

func (h Handle) IsValid() bool { return h != 0 }

// Delegate is a multicast event with no arguments.
// Listeners are identified by the Handle returned from Add, since Go funcs
// cannot be compared.
type Delegate struct {
	next      Handle
	listeners []*listener[func()]
}

type listener[F any] struct {
	handle  Handle
	fn      F
	removed bool
}

// Add subscribes fn and returns its handle. A nil fn is ignored.
func (d *Delegate) Add(fn func()) Handle {
	if fn == nil {
		return 0
	}
	d.next++
	d.listeners = append(d.listeners, &listener[func()]{handle: d.next, fn: fn})
	return d.next
}

// Remove unsubscribes the listener registered under h.
func (d *Delegate) Remove(h Handle) {
	d.listeners = removeHandle(d.listeners, h)
}

// Broadcast calls every listener in subscription order. A listener removed
// by an earlier one during the same broadcast is not called.
func (d *Delegate) Broadcast() {
	// Copy so listeners may remove themselves while we iterate
	snapshot := append([]*listener[func()](nil), d.listeners...)
	for _, l := range snapshot {
		if !l.removed {
			l.fn()
		}
	}
}

func (d *Delegate) Len() int { return len(d.listeners) }

// DelegateWithArg is a multicast event with one argument
type DelegateWithArg[T any] struct {
	next      Handle
	listeners []*listener[func(T)]
}

func (d *DelegateWithArg[T]) Add(fn func(T)) Handle {
	if fn == nil {
		return 0
	}
	d.next++
	d.listeners = append(d.listeners, &listener[func(T)]{handle: d.next, fn: fn})
	return d.next
}

func (d *DelegateWithArg[T]) Remove(h Handle) {
	d.listeners = removeHandle(d.listeners, h)
}

func (d *DelegateWithArg[T]) Broadcast(arg T) {
	snapshot := append([]*listener[func(T)](nil), d.listeners...)
	for _, l := range snapshot {
		if !l.removed {
			l.fn(arg)
		}
	}
}

func (d *DelegateWithArg[T]) Len() int { return len(d.listeners) }

func removeHandle[F any](ls []*listener[F], h Handle) []*listener[F] {
	if !h.IsValid() {
		return ls
	}
	for i, l := range ls {
		if l.handle == h {
			l.removed = true
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// CoreDelegates are the engine-wide lifecycle events.
type CoreDelegates struct {
	// OnPostEngineInit fires once, after the editor UI has been created.
	OnPostEngineInit Delegate
	// OnPreExit fires once, before modules are shut down.
	OnPreExit Delegate
}
