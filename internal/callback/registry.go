package callback

import (
	"sync"
	"sync/atomic"

	"github.com/dagu-org/psig/internal/signal"
)

// Capacity is the number of distinct callbacks that can be registered at
// the same time. A callback hooked on several signals counts once.
const Capacity = 16

// entry pairs a callback with its interest set. Entries are immutable; a
// mask change publishes a new entry.
type entry struct {
	cb   *Callback
	mask signal.Mask
}

// Registry is a fixed arena of callback slots.
//
// Mutations are serialised by a mutex (single writer). Dispatch takes no lock
// and reads each slot with a single atomic load, so a callback is always seen
// with its own mask. Storage is never reallocated. A concurrent Dispatch may
// observe a stale mask or, during a swap-remove, run the moved callback twice;
// it never runs a callback under another callback's mask and never misses a
// callback that stays hooked.
type Registry struct {
	mu    sync.Mutex
	slots [Capacity]atomic.Pointer[entry]
	used  atomic.Int32
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of slots in use.
func (r *Registry) Len() int {
	return int(r.used.Load())
}

// Hook adds the signals of mask to the interest set of cb. It returns false
// only when cb has no slot yet and every slot is taken.
func (r *Registry) Hook(cb *Callback, mask signal.Mask) bool {
	mask = mask.Intersect(signal.MaskAll())

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.find(cb); i >= 0 {
		e := r.slots[i].Load()
		r.slots[i].Store(&entry{cb: cb, mask: e.mask.Union(mask)})
		return true
	}
	if mask.IsEmpty() {
		return true
	}
	n := r.used.Load()
	if int(n) >= Capacity {
		return false
	}
	r.slots[n].Store(&entry{cb: cb, mask: mask})
	r.used.Store(n + 1)
	return true
}

// HookOnSignal hooks cb on a single signal.
func (r *Registry) HookOnSignal(sig signal.Signal, cb *Callback) bool {
	return r.Hook(cb, signal.Bit(sig))
}

// HookOnDisposition hooks cb on every signal whose default disposition is d.
func (r *Registry) HookOnDisposition(d signal.Disposition, cb *Callback) bool {
	return r.Hook(cb, signal.MaskFor(d))
}

// HookOnAll hooks cb on every signal.
func (r *Registry) HookOnAll(cb *Callback) bool {
	return r.Hook(cb, signal.MaskAll())
}

// Unhook removes the signals of mask from the interest set of cb. The slot is
// released once its set becomes empty. Unhooking a signal that is not hooked
// does nothing.
func (r *Registry) Unhook(cb *Callback, mask signal.Mask) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.find(cb)
	if i < 0 {
		return
	}
	remaining := r.slots[i].Load().mask.Without(mask)
	if !remaining.IsEmpty() {
		r.slots[i].Store(&entry{cb: cb, mask: remaining})
		return
	}
	r.remove(i)
}

// UnhookFromSignal removes a single signal from the interest set of cb.
func (r *Registry) UnhookFromSignal(sig signal.Signal, cb *Callback) {
	r.Unhook(cb, signal.Bit(sig))
}

// UnhookFromDisposition removes the signals whose default disposition is d.
func (r *Registry) UnhookFromDisposition(d signal.Disposition, cb *Callback) {
	r.Unhook(cb, signal.MaskFor(d))
}

// UnhookFromAll releases the slot of cb.
func (r *Registry) UnhookFromAll(cb *Callback) {
	r.Unhook(cb, signal.MaskAll())
}

// IsHooked reports whether cb is registered for sig.
func (r *Registry) IsHooked(sig signal.Signal, cb *Callback) bool {
	return r.Mask(cb).Has(sig)
}

// Mask returns the interest set of cb, empty when cb is not registered.
func (r *Registry) Mask(cb *Callback) signal.Mask {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.find(cb); i >= 0 {
		return r.slots[i].Load().mask
	}
	return signal.MaskNone
}

// Clear releases every slot.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.used.Store(0)
	for i := range r.slots {
		r.slots[i].Store(nil)
	}
}

// Dispatch invokes, in slot order, every callback whose interest set holds
// info.Signal and returns how many ran. It must only be called from the
// dispatch context described in the package documentation.
func (r *Registry) Dispatch(info Info) int {
	called := 0
	n := int(r.used.Load())
	for i := range n {
		e := r.slots[i].Load()
		if e == nil || !e.mask.Has(info.Signal) {
			continue
		}
		e.cb.call(info)
		called++
	}
	return called
}

// find returns the slot index of cb, or -1. Callers hold r.mu.
func (r *Registry) find(cb *Callback) int {
	n := int(r.used.Load())
	for i := range n {
		if e := r.slots[i].Load(); e != nil && e.cb == cb {
			return i
		}
	}
	return -1
}

// remove frees slot i by moving the last live entry into it. Slot order is not
// significant. The vacated tail keeps its entry until the slot is reused or
// cleared, so a Dispatch still bounded by the old count reaches the moved
// callback. Callers hold r.mu.
func (r *Registry) remove(i int) {
	last := int(r.used.Load()) - 1
	if i != last {
		r.slots[i].Store(r.slots[last].Load())
	} else {
		r.slots[last].Store(nil)
	}
	r.used.Store(int32(last))
}
